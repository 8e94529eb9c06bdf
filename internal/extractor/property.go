package extractor

import (
	"strconv"

	"immosearch/internal/model"
)

// propertySynonyms maps listing vocabulary to the normalized types.
// Dakar listings freely mix abbreviations with full words.
var propertySynonyms = map[string]model.PropertyType{
	"appartement":  model.PropertyApartment,
	"appartements": model.PropertyApartment,
	"appart":       model.PropertyApartment,
	"appt":         model.PropertyApartment,
	"villa":        model.PropertyHouse,
	"villas":       model.PropertyHouse,
	"maison":       model.PropertyHouse,
	"maisons":      model.PropertyHouse,
	"duplex":       model.PropertyHouse,
	"terrain":      model.PropertyLand,
	"terrains":     model.PropertyLand,
	"parcelle":     model.PropertyLand,
	"parcelles":    model.PropertyLand,
	"studio":       model.PropertyStudio,
	"studios":      model.PropertyStudio,
}

// roomWords are the nouns a room count attaches to
var roomWords = map[string]bool{
	"chambre":  true,
	"chambres": true,
	"piece":    true,
	"pieces":   true,
}

// PropertyTypeExtractor resolves property type mentions through the
// synonym dictionary
type PropertyTypeExtractor struct{}

// Extract returns one candidate per matching token
func (p *PropertyTypeExtractor) Extract(tokens []Token) []Entity {
	var entities []Entity
	for i, tok := range tokens {
		t, ok := propertySynonyms[tok.Text]
		if !ok {
			continue
		}
		// "parcelles assainies" is a neighborhood, not a land keyword
		if tok.Text == "parcelles" && i+1 < len(tokens) && tokens[i+1].Text == "assainies" {
			continue
		}
		entities = append(entities, Entity{
			Category:     CategoryPropertyType,
			Confidence:   confidenceExplicit,
			SpanStart:    i,
			SpanEnd:      i,
			PropertyType: t,
		})
	}
	return entities
}

// RoomCountExtractor reads integers adjacent to a room word:
// "4 chambres", "chambres: 4", "3 pieces"
type RoomCountExtractor struct{}

// Extract returns a candidate for every room-count mention
func (r *RoomCountExtractor) Extract(tokens []Token) []Entity {
	var entities []Entity
	for i, tok := range tokens {
		if !roomWords[tok.Text] {
			continue
		}
		if n, ok := roomCountAt(tokens, i-1); ok {
			entities = append(entities, Entity{
				Category:   CategoryRooms,
				Confidence: confidenceExplicit,
				SpanStart:  i - 1,
				SpanEnd:    i,
				Rooms:      n,
			})
			continue
		}
		if n, ok := roomCountAt(tokens, i+1); ok {
			entities = append(entities, Entity{
				Category:   CategoryRooms,
				Confidence: confidenceExplicit,
				SpanStart:  i,
				SpanEnd:    i + 1,
				Rooms:      n,
			})
		}
	}
	return entities
}

// roomCountAt parses a plausible room count at the given token index.
// Counts above 20 are price fragments or typos, not rooms.
func roomCountAt(tokens []Token, i int) (int, bool) {
	if i < 0 || i >= len(tokens) {
		return 0, false
	}
	n, err := strconv.Atoi(tokens[i].Text)
	if err != nil || n < 1 || n > 20 {
		return 0, false
	}
	return n, true
}
