package model

// PropertyType is the normalized property category used across sources
type PropertyType string

const (
	PropertyApartment PropertyType = "Appartement"
	PropertyHouse     PropertyType = "Maison"
	PropertyLand      PropertyType = "Terrain"
	PropertyStudio    PropertyType = "Studio"
)

// TransactionType classifies a listing or a query as sale or rental
type TransactionType string

const (
	TransactionSale TransactionType = "Vente"
	TransactionRent TransactionType = "Location"
)

// StructuredFilter is the assembled, query-ready representation of a
// natural language search. At most one value per category; price bounds
// are FCFA. A nil field means the category was not mentioned.
type StructuredFilter struct {
	MinPrice        *float64         `json:"min_price,omitempty"`
	MaxPrice        *float64         `json:"max_price,omitempty"`
	City            *string          `json:"city,omitempty"`
	PropertyType    *PropertyType    `json:"property_type,omitempty"`
	Bedrooms        *int             `json:"bedrooms,omitempty"`
	TransactionType *TransactionType `json:"transaction_type,omitempty"`
	// Confidence is the weakest confidence among the surviving candidates.
	Confidence float64 `json:"confidence"`
	// LowConfidence is set when the assembler had to repair the filter
	// (e.g. swapped an inverted price range) or kept an ambiguous parse.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// IsEmpty reports whether no category was extracted
func (f *StructuredFilter) IsEmpty() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.City == nil &&
		f.PropertyType == nil && f.Bedrooms == nil && f.TransactionType == nil
}

// ExtractResult is the outcome of one extraction pass over a raw query
type ExtractResult struct {
	Filter   *StructuredFilter `json:"filter"`
	Keywords []string          `json:"keywords,omitempty"`
	Summary  string            `json:"summary,omitempty"`
}
