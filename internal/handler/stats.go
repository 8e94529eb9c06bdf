package handler

import (
	"net/http"

	"immosearch/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	searchService *service.SearchService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(searchService *service.SearchService) *StatsHandler {
	return &StatsHandler{
		searchService: searchService,
	}
}

// Global handles GET /api/v1/stats
func (h *StatsHandler) Global(c *gin.Context) {
	stats, err := h.searchService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Cities handles GET /api/v1/stats/cities - per-city aggregates with
// coordinates for the map view
func (h *StatsHandler) Cities(c *gin.Context) {
	aggregates, err := h.searchService.CityStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load city stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(aggregates),
		"cities": aggregates,
	})
}
