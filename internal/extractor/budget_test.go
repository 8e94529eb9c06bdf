package extractor

import "testing"

func extractBudget(t *testing.T, query string) []Entity {
	t.Helper()
	b := &BudgetExtractor{BareThreshold: 1_000_000}
	return b.Extract(Tokenize(query))
}

func checkBounds(t *testing.T, e Entity, wantMin, wantMax *float64) {
	t.Helper()
	if (e.MinPrice == nil) != (wantMin == nil) {
		t.Fatalf("MinPrice presence = %v, want %v", e.MinPrice != nil, wantMin != nil)
	}
	if wantMin != nil && *e.MinPrice != *wantMin {
		t.Errorf("MinPrice = %v, want %v", *e.MinPrice, *wantMin)
	}
	if (e.MaxPrice == nil) != (wantMax == nil) {
		t.Fatalf("MaxPrice presence = %v, want %v", e.MaxPrice != nil, wantMax != nil)
	}
	if wantMax != nil && *e.MaxPrice != *wantMax {
		t.Errorf("MaxPrice = %v, want %v", *e.MaxPrice, *wantMax)
	}
}

func TestBudgetExtractRanges(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMin float64
		wantMax float64
	}{
		{
			name:    "Entre phrase with shared scale",
			query:   "entre 50 et 100 millions",
			wantMin: 50_000_000,
			wantMax: 100_000_000,
		},
		{
			name:    "Entre phrase with explicit figures",
			query:   "entre 500.000 et 1.500.000 fcfa",
			wantMin: 500_000,
			wantMax: 1_500_000,
		},
		{
			name:    "Entre phrase inverted order",
			query:   "entre 100 et 50 millions",
			wantMin: 50_000_000,
			wantMax: 100_000_000,
		},
		{
			name:    "De a range form",
			query:   "villa de 200 a 300 millions",
			wantMin: 200_000_000,
			wantMax: 300_000_000,
		},
		{
			name:    "Hyphen shorthand with trailing scale",
			query:   "budget 50-100 millions",
			wantMin: 50_000_000,
			wantMax: 100_000_000,
		},
		{
			name:    "Hyphen shorthand without scale",
			query:   "3000000-5000000",
			wantMin: 3_000_000,
			wantMax: 5_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := extractBudget(t, tt.query)
			if len(entities) != 1 {
				t.Fatalf("Expected 1 budget entity, got %d", len(entities))
			}
			checkBounds(t, entities[0], &tt.wantMin, &tt.wantMax)
			if entities[0].Confidence != confidenceExplicit {
				t.Errorf("Confidence = %v, want %v", entities[0].Confidence, confidenceExplicit)
			}
		})
	}
}

func TestBudgetExtractBounds(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantMin        *float64
		wantMax        *float64
		wantConfidence float64
	}{
		{
			name:           "Moins de is a ceiling",
			query:          "moins de 30M",
			wantMax:        float64Ptr(30_000_000),
			wantConfidence: confidenceExplicit,
		},
		{
			name:           "Jusqu'a is a ceiling",
			query:          "jusqu'à 25 millions",
			wantMax:        float64Ptr(25_000_000),
			wantConfidence: confidenceExplicit,
		},
		{
			name:           "Plus de is a floor",
			query:          "plus de 20 millions",
			wantMin:        float64Ptr(20_000_000),
			wantConfidence: confidenceExplicit,
		},
		{
			name:           "A partir de is a floor",
			query:          "à partir de 15 millions",
			wantMin:        float64Ptr(15_000_000),
			wantConfidence: confidenceExplicit,
		},
		{
			name:           "Scaled amount without direction defaults to ceiling",
			query:          "villa 80 millions",
			wantMax:        float64Ptr(80_000_000),
			wantConfidence: confidenceImplied,
		},
		{
			name:           "Large bare number taken as price",
			query:          "appartement 70000000",
			wantMax:        float64Ptr(70_000_000),
			wantConfidence: confidenceImplied,
		},
		{
			name:           "Small bare number flagged ambiguous",
			query:          "environ 300",
			wantMax:        float64Ptr(300),
			wantConfidence: confidenceAmbiguous,
		},
		{
			name:           "Decimal comma with scale",
			query:          "1,5 million fcfa",
			wantMax:        float64Ptr(1_500_000),
			wantConfidence: confidenceImplied,
		},
		{
			name:           "Dotted thousand groups",
			query:          "prix 1.500.000",
			wantMax:        float64Ptr(1_500_000),
			wantConfidence: confidenceImplied,
		},
		{
			name:           "Trailing currency words consumed",
			query:          "moins de 30 millions de fcfa",
			wantMax:        float64Ptr(30_000_000),
			wantConfidence: confidenceExplicit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := extractBudget(t, tt.query)
			if len(entities) != 1 {
				t.Fatalf("Expected 1 budget entity, got %d", len(entities))
			}
			checkBounds(t, entities[0], tt.wantMin, tt.wantMax)
			if entities[0].Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", entities[0].Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestBudgetExtractRejections(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "Room count", query: "4 chambres"},
		{name: "Room count range", query: "entre 3 et 4 chambres"},
		{name: "Room count de a range", query: "de 2 a 3 pieces"},
		{name: "Room count reversed", query: "chambres 4"},
		{name: "Floor count", query: "immeuble 3 etages"},
		{name: "Attached surface unit", query: "terrain de 500m²"},
		{name: "Separate surface unit", query: "terrain de 500 metres"},
		{name: "Hectares", query: "2 hectares"},
		{name: "No numbers at all", query: "belle villa au bord de mer"},
		{name: "Empty input", query: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := extractBudget(t, tt.query)
			if len(entities) != 0 {
				t.Errorf("Expected no budget entity for %q, got %d", tt.query, len(entities))
			}
		})
	}
}

func TestBudgetExtractMixedSurfaceAndPrice(t *testing.T) {
	entities := extractBudget(t, "terrain de 500m² pour moins de 30M")
	if len(entities) != 1 {
		t.Fatalf("Expected 1 budget entity, got %d", len(entities))
	}
	checkBounds(t, entities[0], nil, float64Ptr(30_000_000))
}

func TestBudgetExtractMinAndMaxMentions(t *testing.T) {
	entities := extractBudget(t, "plus de 10 millions et moins de 40 millions")
	if len(entities) != 2 {
		t.Fatalf("Expected 2 budget entities, got %d", len(entities))
	}
	checkBounds(t, entities[0], float64Ptr(10_000_000), nil)
	checkBounds(t, entities[1], nil, float64Ptr(40_000_000))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{input: "500", want: 500, ok: true},
		{input: "1.500.000", want: 1_500_000, ok: true},
		{input: "1,500,000", want: 1_500_000, ok: true},
		{input: "1,5", want: 1.5, ok: true},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseAmount(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseAmount(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
