package model

// SearchRequest represents a search query request
type SearchRequest struct {
	Query   string            `json:"query" binding:"required"`
	Filters *StructuredFilter `json:"filters,omitempty"`
	Options *SearchOptions    `json:"options,omitempty"`
}

// SearchOptions represents pagination options
type SearchOptions struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// SearchResponse represents a search result response
type SearchResponse struct {
	SearchID string                 `json:"search_id"`
	Results  []PropertySearchResult `json:"results"`
	Total    int                    `json:"total"`
	Filter   *StructuredFilter      `json:"filter,omitempty"`
	Summary  string                 `json:"summary,omitempty"`
	Took     int64                  `json:"took_ms"`
}

// ExtractRequest represents an extraction-only request
type ExtractRequest struct {
	Query string `json:"query" binding:"required"`
}

// FeedbackRequest represents a user action on a search result
type FeedbackRequest struct {
	SearchID   string `json:"search_id" binding:"required"`
	PropertyID string `json:"property_id" binding:"required"`
	Action     string `json:"action" binding:"required"` // click, contact, view_details
}

// FeedbackResponse represents feedback response
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
