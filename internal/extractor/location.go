package extractor

import (
	"strings"
)

// LocationExtractor matches token n-grams against the gazetteer.
// Longest match at the earliest position wins; no fuzzy matching is done,
// an unknown place name simply produces no entity.
type LocationExtractor struct {
	gazetteer *Gazetteer
}

// NewLocationExtractor creates a location extractor over a loaded gazetteer
func NewLocationExtractor(g *Gazetteer) *LocationExtractor {
	return &LocationExtractor{gazetteer: g}
}

// Extract returns the first gazetteer match found in the token sequence
func (l *LocationExtractor) Extract(tokens []Token) []Entity {
	maxN := l.gazetteer.MaxWords()

	for i := 0; i < len(tokens); i++ {
		for n := maxN; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			words := make([]string, n)
			for k := 0; k < n; k++ {
				words[k] = tokens[i+k].Text
			}
			place := l.gazetteer.Lookup(words...)
			if place == nil {
				continue
			}
			// Bare numbers never name a place even if someone adds
			// one to the gazetteer by mistake
			if isNumeric(words[0]) {
				continue
			}
			return []Entity{{
				Category:   CategoryLocation,
				Confidence: confidenceExplicit,
				SpanStart:  i,
				SpanEnd:    i + n - 1,
				City:       place.Name,
			}}
		}
	}

	return nil
}

func isNumeric(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) < 0
}
