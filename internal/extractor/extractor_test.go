package extractor

import (
	"reflect"
	"testing"

	"immosearch/internal/model"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := New(NewGazetteer(), DefaultOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e
}

func TestNewRequiresGazetteer(t *testing.T) {
	if _, err := New(nil, DefaultOptions()); err == nil {
		t.Error("Expected an error for a nil gazetteer")
	}
}

func TestExtractFullQuery(t *testing.T) {
	e := newTestExtractor(t)

	result := e.Extract("Villa 4 chambres à louer à Mermoz")
	f := result.Filter

	if f.PropertyType == nil || *f.PropertyType != model.PropertyHouse {
		t.Errorf("PropertyType = %v, want %q", f.PropertyType, model.PropertyHouse)
	}
	if f.Bedrooms == nil || *f.Bedrooms != 4 {
		t.Errorf("Bedrooms = %v, want 4", f.Bedrooms)
	}
	if f.TransactionType == nil || *f.TransactionType != model.TransactionRent {
		t.Errorf("TransactionType = %v, want %q", f.TransactionType, model.TransactionRent)
	}
	if f.City == nil || *f.City != "Mermoz" {
		t.Errorf("City = %v, want Mermoz", f.City)
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		t.Errorf("Unexpected price bounds: min=%v max=%v", f.MinPrice, f.MaxPrice)
	}
	if f.LowConfidence {
		t.Error("Fully explicit query should not be low confidence")
	}
}

func TestExtractBudgetRange(t *testing.T) {
	e := newTestExtractor(t)

	f := e.Extract("maison entre 50 et 100 millions à Dakar").Filter
	if f.MinPrice == nil || *f.MinPrice != 50_000_000 {
		t.Errorf("MinPrice = %v, want 50000000", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 100_000_000 {
		t.Errorf("MaxPrice = %v, want 100000000", f.MaxPrice)
	}
	if f.City == nil || *f.City != "Dakar" {
		t.Errorf("City = %v, want Dakar", f.City)
	}
}

func TestExtractSurfaceNeverPollutesPrice(t *testing.T) {
	e := newTestExtractor(t)

	f := e.Extract("terrain de 500m² pour moins de 30M").Filter
	if f.PropertyType == nil || *f.PropertyType != model.PropertyLand {
		t.Errorf("PropertyType = %v, want %q", f.PropertyType, model.PropertyLand)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 30_000_000 {
		t.Errorf("MaxPrice = %v, want 30000000", f.MaxPrice)
	}
	if f.MinPrice != nil {
		t.Errorf("MinPrice = %v, want nil", f.MinPrice)
	}
	if f.TransactionType != nil {
		t.Errorf("TransactionType = %v, want nil", f.TransactionType)
	}
}

func TestExtractEmptyAndUnrecognizable(t *testing.T) {
	e := newTestExtractor(t)

	queries := []string{
		"",
		"   ",
		"bonjour comment allez vous",
	}
	for _, q := range queries {
		f := e.Extract(q).Filter
		if !f.IsEmpty() {
			t.Errorf("Expected empty filter for %q, got %+v", q, f)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := newTestExtractor(t)

	query := "appartement 3 chambres à louer à Ouakam moins de 500.000 fcfa"
	first := e.Extract(query)
	second := e.Extract(query)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extraction is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtractKeywords(t *testing.T) {
	e := newTestExtractor(t)

	result := e.Extract("villa avec piscine à louer à Ngor")
	want := []string{"piscine"}
	if !reflect.DeepEqual(result.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", result.Keywords, want)
	}
}

func TestExtractConfidenceTracksWeakestSlot(t *testing.T) {
	e := newTestExtractor(t)

	// "80 millions" has no direction word, so the budget slot is implied
	f := e.Extract("villa 80 millions à Fann").Filter
	if f.Confidence != confidenceImplied {
		t.Errorf("Confidence = %v, want %v", f.Confidence, confidenceImplied)
	}
}
