package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"immosearch/internal/model"
)

// Match reason constants
const (
	ReasonBedroomsMatch   = "Nombre de chambres correspondant"
	ReasonTypeMatch       = "Type de bien correspondant"
	ReasonCityMatch       = "Zone recherchée"
	ReasonPriceMatch      = "Prix dans le budget"
	ReasonStatusMatch     = "Transaction correspondante"
	ReasonRecentlyScraped = "Annonce récente"
	ReasonGeneralMatch    = "Correspondance générale"
)

// Ranker handles ranking and scoring of search results
type Ranker struct {
	weightText    float64
	weightPrice   float64
	weightRecency float64
}

// NewRanker creates a new ranker with specified weights
func NewRanker(weightText, weightPrice, weightRecency float64) *Ranker {
	return &Ranker{
		weightText:    weightText,
		weightPrice:   weightPrice,
		weightRecency: weightRecency,
	}
}

// RankResults scores and ranks search results. textRanks carries a 0-1
// relevance per property ID derived from the result order.
func (r *Ranker) RankResults(
	properties []model.Property,
	textRanks map[string]float64,
	filter *model.StructuredFilter,
) []model.PropertySearchResult {
	results := make([]model.PropertySearchResult, 0, len(properties))

	for _, property := range properties {
		result := model.PropertySearchResult{
			Property:       property,
			MatchedReasons: []string{},
		}

		textScore := clamp01(textRanks[property.ID])
		priceScore := r.calculatePriceScore(property.Price, filter)
		recencyScore := r.calculateRecencyScore(property.ScrapedAt)

		result.Score = (r.weightText * textScore) +
			(r.weightPrice * priceScore) +
			(r.weightRecency * recencyScore)

		result.MatchedReasons = r.generateMatchedReasons(property, filter, priceScore)

		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

func clamp01(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}

// calculatePriceScore calculates how well the price matches the budget
func (r *Ranker) calculatePriceScore(price *float64, filter *model.StructuredFilter) float64 {
	if price == nil {
		return 0.5 // Neutral score if no price
	}

	if filter == nil || (filter.MinPrice == nil && filter.MaxPrice == nil) {
		return 1.0 // Full score if no price filter
	}

	actualPrice := *price

	// Within an explicit range, score proximity to the midpoint
	if filter.MinPrice != nil && filter.MaxPrice != nil {
		minPrice := *filter.MinPrice
		maxPrice := *filter.MaxPrice

		if actualPrice < minPrice || actualPrice > maxPrice {
			return 0.0
		}

		priceRange := maxPrice - minPrice
		if priceRange == 0 {
			return 1.0
		}

		midpoint := (minPrice + maxPrice) / 2
		score := 1.0 - (math.Abs(actualPrice-midpoint) / (priceRange / 2))
		return clamp01(score)
	}

	if filter.MinPrice != nil {
		if actualPrice < *filter.MinPrice {
			return 0.0
		}
		return 1.0
	}

	if actualPrice > *filter.MaxPrice {
		return 0.0
	}
	// Closer to the ceiling is better value for money
	return clamp01(actualPrice / *filter.MaxPrice)
}

// calculateRecencyScore decays with the days since the listing was scraped
func (r *Ranker) calculateRecencyScore(scrapedAt *time.Time) float64 {
	if scrapedAt == nil {
		return 0.5 // Neutral score if no date
	}

	daysSince := time.Since(*scrapedAt).Hours() / 24

	// Exponential decay: after 30 days ~0.74, after 90 days ~0.41
	return clamp01(math.Exp(-0.01 * daysSince))
}

// generateMatchedReasons explains why a listing matched
func (r *Ranker) generateMatchedReasons(
	property model.Property,
	filter *model.StructuredFilter,
	priceScore float64,
) []string {
	reasons := []string{}

	if filter != nil {
		if filter.Bedrooms != nil && property.Bedrooms != nil && *property.Bedrooms == *filter.Bedrooms {
			reasons = append(reasons, ReasonBedroomsMatch)
		}

		if filter.PropertyType != nil && property.PropertyType != nil &&
			strings.Contains(strings.ToLower(*property.PropertyType), strings.ToLower(string(*filter.PropertyType))) {
			reasons = append(reasons, ReasonTypeMatch)
		}

		if filter.City != nil && property.City != nil &&
			strings.Contains(strings.ToLower(*property.City), strings.ToLower(*filter.City)) {
			reasons = append(reasons, ReasonCityMatch)
		}

		if filter.TransactionType != nil && property.Status != nil &&
			strings.EqualFold(*property.Status, string(*filter.TransactionType)) {
			reasons = append(reasons, ReasonStatusMatch)
		}

		if priceScore > 0.8 {
			reasons = append(reasons, ReasonPriceMatch)
		}
	}

	if property.ScrapedAt != nil {
		if time.Since(*property.ScrapedAt).Hours()/24 < 7 {
			reasons = append(reasons, ReasonRecentlyScraped)
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}

	return reasons
}
