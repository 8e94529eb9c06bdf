package extractor

import (
	"immosearch/internal/model"
)

// Assemble merges candidate entities into a single StructuredFilter.
// Per slot the highest confidence wins; ties go to the latest mention on
// the assumption that later words refine earlier ones. Price bounds are
// merged independently so "plus de 20M ... moins de 50M" yields a range.
func Assemble(entities []Entity) *model.StructuredFilter {
	filter := &model.StructuredFilter{}

	var bestMin, bestMax, bestCity, bestType, bestRooms, bestTx *Entity

	for i := range entities {
		e := &entities[i]
		switch e.Category {
		case CategoryBudget:
			if e.MinPrice != nil {
				bestMin = better(bestMin, e)
			}
			if e.MaxPrice != nil {
				bestMax = better(bestMax, e)
			}
		case CategoryLocation:
			bestCity = better(bestCity, e)
		case CategoryPropertyType:
			bestType = better(bestType, e)
		case CategoryRooms:
			bestRooms = better(bestRooms, e)
		case CategoryTransaction:
			bestTx = better(bestTx, e)
		}
	}

	confidence := 1.0
	keep := func(c float64) {
		if c < confidence {
			confidence = c
		}
	}

	if bestMin != nil {
		v := *bestMin.MinPrice
		filter.MinPrice = &v
		keep(bestMin.Confidence)
	}
	if bestMax != nil {
		v := *bestMax.MaxPrice
		filter.MaxPrice = &v
		keep(bestMax.Confidence)
	}
	if bestCity != nil {
		city := bestCity.City
		filter.City = &city
		keep(bestCity.Confidence)
	}
	if bestType != nil {
		t := bestType.PropertyType
		filter.PropertyType = &t
		keep(bestType.Confidence)
	}
	if bestRooms != nil {
		n := bestRooms.Rooms
		filter.Bedrooms = &n
		keep(bestRooms.Confidence)
	}
	if bestTx != nil {
		tx := bestTx.Transaction
		filter.TransactionType = &tx
		keep(bestTx.Confidence)
		if bestTx.Confidence < confidenceExplicit {
			filter.LowConfidence = true
		}
	}

	// Inverted ranges are repaired rather than rejected
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		filter.MinPrice, filter.MaxPrice = filter.MaxPrice, filter.MinPrice
		filter.LowConfidence = true
	}

	if filter.IsEmpty() {
		filter.Confidence = 0
	} else {
		filter.Confidence = confidence
		if confidence <= confidenceAmbiguous {
			filter.LowConfidence = true
		}
	}

	return filter
}

// better keeps the stronger of two candidates, preferring the later
// mention on equal confidence
func better(current, candidate *Entity) *Entity {
	if current == nil {
		return candidate
	}
	if candidate.Confidence > current.Confidence {
		return candidate
	}
	if candidate.Confidence == current.Confidence && candidate.SpanStart >= current.SpanStart {
		return candidate
	}
	return current
}
