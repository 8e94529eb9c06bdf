package service

import (
	"testing"

	"immosearch/internal/model"
)

func TestMergeFilters(t *testing.T) {
	city := "Dakar"
	extractedCity := "Thiès"
	propertyType := model.PropertyApartment

	extracted := &model.StructuredFilter{
		City:     &extractedCity,
		MaxPrice: float64Ptr(30_000_000),
	}
	explicit := &model.StructuredFilter{
		City:         &city,
		PropertyType: &propertyType,
	}

	merged := mergeFilters(explicit, extracted)

	if merged.City == nil || *merged.City != "Dakar" {
		t.Errorf("City = %v, want the explicit Dakar", merged.City)
	}
	if merged.PropertyType == nil || *merged.PropertyType != model.PropertyApartment {
		t.Errorf("PropertyType = %v, want %q", merged.PropertyType, model.PropertyApartment)
	}
	if merged.MaxPrice == nil || *merged.MaxPrice != 30_000_000 {
		t.Errorf("MaxPrice = %v, want the extracted 30000000", merged.MaxPrice)
	}
}

func TestMergeFiltersNilInputs(t *testing.T) {
	merged := mergeFilters(nil, nil)
	if !merged.IsEmpty() {
		t.Errorf("Expected empty merge, got %+v", merged)
	}

	extracted := &model.StructuredFilter{MaxPrice: float64Ptr(10_000_000)}
	merged = mergeFilters(nil, extracted)
	if merged.MaxPrice == nil || *merged.MaxPrice != 10_000_000 {
		t.Errorf("MaxPrice = %v, want 10000000", merged.MaxPrice)
	}
}

func TestMergeFiltersRepairsInvertedRange(t *testing.T) {
	extracted := &model.StructuredFilter{MaxPrice: float64Ptr(30_000_000)}
	explicit := &model.StructuredFilter{MinPrice: float64Ptr(80_000_000)}

	merged := mergeFilters(explicit, extracted)
	if merged.MinPrice == nil || *merged.MinPrice != 30_000_000 {
		t.Errorf("MinPrice = %v, want 30000000", merged.MinPrice)
	}
	if merged.MaxPrice == nil || *merged.MaxPrice != 80_000_000 {
		t.Errorf("MaxPrice = %v, want 80000000", merged.MaxPrice)
	}
	if !merged.LowConfidence {
		t.Error("Repaired range must be flagged low confidence")
	}
}
