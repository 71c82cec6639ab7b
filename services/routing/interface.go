package routing

import (
	"context"

	"vetly/models"
)

// SuggestionService turns a routing request into the ordered option list the
// UI presents.
type SuggestionService interface {
	Suggestions(ctx context.Context, req models.RoutingRequest) ([]models.UnifiedOption, error)
}
