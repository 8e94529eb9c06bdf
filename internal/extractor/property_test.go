package extractor

import (
	"testing"

	"immosearch/internal/model"
)

func TestPropertyTypeExtract(t *testing.T) {
	var p PropertyTypeExtractor

	tests := []struct {
		name     string
		query    string
		wantType model.PropertyType
	}{
		{name: "Full word", query: "appartement a dakar", wantType: model.PropertyApartment},
		{name: "Abbreviation", query: "bel appart meuble", wantType: model.PropertyApartment},
		{name: "Villa maps to house", query: "villa avec piscine", wantType: model.PropertyHouse},
		{name: "Duplex maps to house", query: "duplex a ouakam", wantType: model.PropertyHouse},
		{name: "Terrain", query: "terrain de 500m²", wantType: model.PropertyLand},
		{name: "Parcelle singular", query: "parcelle viabilisée", wantType: model.PropertyLand},
		{name: "Studio", query: "studio a louer", wantType: model.PropertyStudio},
		{name: "Plural form", query: "maisons a vendre", wantType: model.PropertyHouse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := p.Extract(Tokenize(tt.query))
			if len(entities) != 1 {
				t.Fatalf("Expected 1 property type entity, got %d", len(entities))
			}
			if entities[0].PropertyType != tt.wantType {
				t.Errorf("PropertyType = %q, want %q", entities[0].PropertyType, tt.wantType)
			}
		})
	}
}

func TestPropertyTypeParcellesAssainies(t *testing.T) {
	var p PropertyTypeExtractor

	// The neighborhood name must not read as a land keyword
	if entities := p.Extract(Tokenize("maison aux parcelles assainies")); len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	} else if entities[0].PropertyType != model.PropertyHouse {
		t.Errorf("PropertyType = %q, want %q", entities[0].PropertyType, model.PropertyHouse)
	}

	if entities := p.Extract(Tokenize("parcelles assainies")); len(entities) != 0 {
		t.Errorf("Expected no entity for the bare neighborhood name, got %d", len(entities))
	}

	// A real land query still works
	if entities := p.Extract(Tokenize("parcelles a vendre a rufisque")); len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	} else if entities[0].PropertyType != model.PropertyLand {
		t.Errorf("PropertyType = %q, want %q", entities[0].PropertyType, model.PropertyLand)
	}
}

func TestPropertyTypeNoMatch(t *testing.T) {
	var p PropertyTypeExtractor
	if entities := p.Extract(Tokenize("quelque chose a dakar")); len(entities) != 0 {
		t.Errorf("Expected no entity, got %d", len(entities))
	}
}

func TestRoomCountExtract(t *testing.T) {
	var r RoomCountExtractor

	tests := []struct {
		name      string
		query     string
		wantRooms int
	}{
		{name: "Number before", query: "villa 4 chambres", wantRooms: 4},
		{name: "Number after", query: "chambres 3 salon", wantRooms: 3},
		{name: "Pieces", query: "appartement 3 pieces", wantRooms: 3},
		{name: "Singular", query: "1 chambre salon", wantRooms: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := r.Extract(Tokenize(tt.query))
			if len(entities) != 1 {
				t.Fatalf("Expected 1 room count entity, got %d", len(entities))
			}
			if entities[0].Rooms != tt.wantRooms {
				t.Errorf("Rooms = %d, want %d", entities[0].Rooms, tt.wantRooms)
			}
		})
	}
}

func TestRoomCountRejections(t *testing.T) {
	var r RoomCountExtractor

	tests := []struct {
		name  string
		query string
	}{
		{name: "No number nearby", query: "chambre a coucher spacieuse"},
		{name: "Implausible count", query: "25 chambres"},
		{name: "Zero", query: "0 chambres"},
		{name: "No room word", query: "villa 4 salons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if entities := r.Extract(Tokenize(tt.query)); len(entities) != 0 {
				t.Errorf("Expected no room count entity for %q, got %d", tt.query, len(entities))
			}
		})
	}
}
