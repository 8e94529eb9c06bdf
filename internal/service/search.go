package service

import (
	"context"
	"time"

	"immosearch/internal/extractor"
	"immosearch/internal/model"
	"immosearch/internal/query"
	"immosearch/internal/repository"

	"github.com/google/uuid"
)

// SearchService handles search business logic
type SearchService struct {
	repo      *repository.PostgresRepository
	extractor *extractor.Extractor
	gazetteer *extractor.Gazetteer
	ranker    *Ranker
	status    *StatusDetector
}

// NewSearchService creates a new search service
func NewSearchService(
	repo *repository.PostgresRepository,
	ext *extractor.Extractor,
	gazetteer *extractor.Gazetteer,
	ranker *Ranker,
) *SearchService {
	return &SearchService{
		repo:      repo,
		extractor: ext,
		gazetteer: gazetteer,
		ranker:    ranker,
		status:    &StatusDetector{},
	}
}

// Search extracts a filter from the query, translates it to predicates,
// runs the database search and ranks the page of results
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	startTime := time.Now()

	extracted := s.extractor.Extract(req.Query)
	filter := mergeFilters(req.Filters, extracted.Filter)

	preds := query.Translate(filter)
	summary := query.Summarize(preds)

	options := req.Options
	if options == nil {
		options = &model.SearchOptions{Limit: 20, Offset: 0}
	}

	properties, total, err := s.repo.SearchProperties(ctx, preds, extracted.Keywords, options.Limit, options.Offset)
	if err != nil {
		return nil, err
	}

	// Backfill missing listing statuses so results and ranking reasons
	// show sale/rent even when the source never stored one
	for i := range properties {
		if properties[i].Status == nil {
			p := &properties[i]
			detected := string(s.status.Detect(p.Title, p.PropertyType, p.Price, nil))
			p.Status = &detected
		}
	}

	// Relevance from result order: the repository sorts best-first
	textRanks := make(map[string]float64, len(properties))
	for i, property := range properties {
		textRanks[property.ID] = 1.0 - (float64(i) / float64(len(properties)))
	}

	results := s.ranker.RankResults(properties, textRanks, filter)

	took := time.Since(startTime).Milliseconds()
	searchID := uuid.NewString()

	// Log search (non-blocking)
	go func() {
		_ = s.repo.LogSearch(context.Background(), searchID, req.Query, filter, extracted.Keywords, total, int(took))
	}()

	return &model.SearchResponse{
		SearchID: searchID,
		Results:  results,
		Total:    total,
		Filter:   filter,
		Summary:  summary,
		Took:     took,
	}, nil
}

// Extract runs extraction only, without touching storage
func (s *SearchService) Extract(queryText string) *model.ExtractResult {
	result := s.extractor.Extract(queryText)
	result.Summary = query.Summarize(query.Translate(result.Filter))
	return result
}

// GetProperty retrieves a single listing by ID, backfilling its status
func (s *SearchService) GetProperty(ctx context.Context, id string) (*model.Property, error) {
	property, err := s.repo.GetPropertyByID(ctx, id)
	if err != nil || property == nil {
		return property, err
	}
	if property.Status == nil {
		detected := string(s.status.Detect(property.Title, property.PropertyType, property.Price, nil))
		property.Status = &detected
	}
	return property, nil
}

// Stats returns the global listing statistics
func (s *SearchService) Stats(ctx context.Context) (*model.GlobalStats, error) {
	return s.repo.GlobalStats(ctx)
}

// CityStats returns per-city aggregates enriched with gazetteer
// coordinates for the map view
func (s *SearchService) CityStats(ctx context.Context) ([]model.CityAggregate, error) {
	aggregates, err := s.repo.CityAggregates(ctx)
	if err != nil {
		return nil, err
	}
	for i := range aggregates {
		tokens := extractor.Tokenize(aggregates[i].City)
		words := make([]string, len(tokens))
		for k, t := range tokens {
			words[k] = t.Text
		}
		if place := s.gazetteer.Lookup(words...); place != nil {
			aggregates[i].City = place.Name
			aggregates[i].Region = place.Region
			if place.Latitude != 0 || place.Longitude != 0 {
				lat, lon := place.Latitude, place.Longitude
				aggregates[i].Latitude = &lat
				aggregates[i].Longitude = &lon
			}
		}
	}
	return aggregates, nil
}

// LogFeedback records a user action on a search result
func (s *SearchService) LogFeedback(ctx context.Context, searchID, propertyID, action string) error {
	return s.repo.LogFeedback(ctx, searchID, propertyID, action)
}

// mergeFilters overlays extracted slots onto explicitly provided filters;
// explicit values win
func mergeFilters(explicit, extracted *model.StructuredFilter) *model.StructuredFilter {
	merged := &model.StructuredFilter{}
	if extracted != nil {
		*merged = *extracted
	}

	if explicit != nil {
		if explicit.MinPrice != nil {
			merged.MinPrice = explicit.MinPrice
		}
		if explicit.MaxPrice != nil {
			merged.MaxPrice = explicit.MaxPrice
		}
		if explicit.City != nil {
			merged.City = explicit.City
		}
		if explicit.PropertyType != nil {
			merged.PropertyType = explicit.PropertyType
		}
		if explicit.Bedrooms != nil {
			merged.Bedrooms = explicit.Bedrooms
		}
		if explicit.TransactionType != nil {
			merged.TransactionType = explicit.TransactionType
		}
	}

	// Explicit overrides can reintroduce an inverted range
	if merged.MinPrice != nil && merged.MaxPrice != nil && *merged.MinPrice > *merged.MaxPrice {
		merged.MinPrice, merged.MaxPrice = merged.MaxPrice, merged.MinPrice
		merged.LowConfidence = true
	}

	return merged
}
