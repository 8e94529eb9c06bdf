package model

import (
	"time"
)

// Property represents a consolidated listing from the scraping sources
// (CoinAfrique, ExpatDakar, LogerDakar)
type Property struct {
	ID           string     `json:"id" db:"id"`
	Source       string     `json:"source" db:"source"`
	URL          *string    `json:"url,omitempty" db:"url"`
	Title        *string    `json:"title,omitempty" db:"title"`
	Price        *float64   `json:"price,omitempty" db:"price"`
	City         *string    `json:"city,omitempty" db:"city"`
	Address      *string    `json:"address,omitempty" db:"adresse"`
	PropertyType *string    `json:"property_type,omitempty" db:"property_type"`
	Bedrooms     *int       `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms    *int       `json:"bathrooms,omitempty" db:"bathrooms"`
	SurfaceArea  *float64   `json:"surface_area,omitempty" db:"surface_area"`
	Status       *string    `json:"status,omitempty" db:"statut"`
	Description  *string    `json:"description,omitempty" db:"description"`
	Latitude     *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64   `json:"longitude,omitempty" db:"longitude"`
	ScrapedAt    *time.Time `json:"scraped_at,omitempty" db:"scraped_at"`
}

// PropertySearchResult represents a search result with ranking metadata
type PropertySearchResult struct {
	Property
	Score          float64  `json:"score"`
	MatchedReasons []string `json:"matched_reasons"`
}

// GlobalStats holds the aggregate counters exposed on /api/v1/stats
type GlobalStats struct {
	TotalProperties int            `json:"total_properties"`
	SourceCounts    map[string]int `json:"source_counts"`
	AveragePrice    float64        `json:"average_price"`
	TypeCounts      map[string]int `json:"type_counts,omitempty"`
}

// CityAggregate holds per-city aggregates for the map view
type CityAggregate struct {
	City         string   `json:"city" db:"city"`
	Count        int      `json:"count" db:"count"`
	AveragePrice float64  `json:"average_price" db:"average_price"`
	MinPrice     *float64 `json:"min_price,omitempty" db:"min_price"`
	MaxPrice     *float64 `json:"max_price,omitempty" db:"max_price"`
	Region       string   `json:"region,omitempty" db:"-"`
	Latitude     *float64 `json:"latitude,omitempty" db:"-"`
	Longitude    *float64 `json:"longitude,omitempty" db:"-"`
}
