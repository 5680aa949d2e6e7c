package ratehawk

import (
	"context"

	"travelgate/models"
)

// SuggestResult carries the normalized suggestion lists for one query.
type SuggestResult struct {
	Regions []models.Suggestion
	Hotels  []models.Suggestion
}

// Service is the Ratehawk hotel-search API surface used by the handlers.
type Service interface {
	// Suggest returns autocomplete regions and hotels for a partial query.
	Suggest(ctx context.Context, query, language string, limit int) (*SuggestResult, error)

	// Search runs a region hotel search and returns the raw provider result.
	Search(ctx context.Context, req models.SearchRequest, regionID int64) (map[string]interface{}, error)
}
