package extractor

import (
	"immosearch/internal/model"
)

// Category identifies which filter slot an extracted entity feeds
type Category int

const (
	CategoryBudget Category = iota
	CategoryLocation
	CategoryPropertyType
	CategoryRooms
	CategoryTransaction
)

// Entity is a typed candidate value produced by one of the extractors.
// Only the fields matching its Category are meaningful. Several candidates
// per category may coexist until the assembler merges them.
type Entity struct {
	Category   Category
	Confidence float64

	// Token span the candidate was read from, used for the
	// later-mention-wins tie-break.
	SpanStart int
	SpanEnd   int

	MinPrice     *float64
	MaxPrice     *float64
	City         string
	PropertyType model.PropertyType
	Rooms        int
	Transaction  model.TransactionType
}

// Confidence levels shared across extractors. Explicit matches (a direction
// word, a dictionary hit) score high; bare numbers without units score low
// and survive only if nothing better shows up.
const (
	confidenceExplicit  = 0.9
	confidenceImplied   = 0.6
	confidenceAmbiguous = 0.3
)
