// Package extractor turns free-text property queries into structured
// filters through rule-based entity extraction: no model calls, no I/O,
// just the tokenizer, a gazetteer and keyword tables. Extraction is
// stateless per request and safe to run concurrently.
package extractor

import (
	"errors"

	"immosearch/internal/model"
)

// Options tunes the extraction rules
type Options struct {
	// BareNumberThreshold is the FCFA amount above which a unit-less
	// number counts as an absolute price
	BareNumberThreshold float64
	// DefaultTransaction breaks ties in the keyword vote
	DefaultTransaction model.TransactionType
}

// DefaultOptions returns the production defaults
func DefaultOptions() Options {
	return Options{
		BareNumberThreshold: 1_000_000,
		DefaultTransaction:  model.TransactionSale,
	}
}

// Extractor runs the full extraction pipeline over a raw query
type Extractor struct {
	budget      *BudgetExtractor
	location    *LocationExtractor
	propType    *PropertyTypeExtractor
	rooms       *RoomCountExtractor
	transaction *TransactionClassifier
}

// New creates an extractor over a loaded gazetteer. A nil gazetteer is a
// configuration error, not something to paper over at query time.
func New(gazetteer *Gazetteer, opts Options) (*Extractor, error) {
	if gazetteer == nil {
		return nil, errors.New("extractor: gazetteer not loaded")
	}
	if opts.BareNumberThreshold <= 0 {
		opts.BareNumberThreshold = DefaultOptions().BareNumberThreshold
	}
	if opts.DefaultTransaction == "" {
		opts.DefaultTransaction = model.TransactionSale
	}
	return &Extractor{
		budget:      &BudgetExtractor{BareThreshold: opts.BareNumberThreshold},
		location:    NewLocationExtractor(gazetteer),
		propType:    &PropertyTypeExtractor{},
		rooms:       &RoomCountExtractor{},
		transaction: &TransactionClassifier{TieDefault: opts.DefaultTransaction},
	}, nil
}

// Extract runs tokenization, the entity extractors and the assembler.
// Empty or unrecognizable input yields an empty filter, never an error.
func (e *Extractor) Extract(query string) *model.ExtractResult {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return &model.ExtractResult{Filter: &model.StructuredFilter{}}
	}

	var entities []Entity
	entities = append(entities, e.budget.Extract(tokens)...)
	entities = append(entities, e.location.Extract(tokens)...)
	entities = append(entities, e.propType.Extract(tokens)...)
	entities = append(entities, e.rooms.Extract(tokens)...)
	entities = append(entities, e.transaction.Extract(tokens)...)

	filter := Assemble(entities)

	return &model.ExtractResult{
		Filter:   filter,
		Keywords: keywords(tokens, entities),
	}
}

// keywords returns the normalized tokens no extractor claimed, for the
// repository's full-text search
func keywords(tokens []Token, entities []Entity) []string {
	claimed := make([]bool, len(tokens))
	for _, e := range entities {
		for i := e.SpanStart; i <= e.SpanEnd && i < len(tokens); i++ {
			if i >= 0 {
				claimed[i] = true
			}
		}
	}

	var out []string
	for i, tok := range tokens {
		if !claimed[i] && len(tok.Text) > 2 && !stopWords[tok.Text] {
			out = append(out, tok.Text)
		}
	}
	return out
}

// French stop words common in listing queries
var stopWords = map[string]bool{
	"les": true, "des": true, "une": true, "pour": true, "avec": true,
	"dans": true, "sur": true, "par": true, "aux": true, "est": true,
	"cherche": true, "recherche": true, "veux": true, "voudrais": true,
	"bien": true, "situe": true, "situee": true,
}
