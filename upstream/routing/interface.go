package routing

import (
	"context"

	"vetly/models"
)

// Repository defines access to the vehicle-routing API. The actual route
// optimization lives entirely upstream; we submit an insertion request and
// consume the candidate set it returns.
type Repository interface {
	// Suggest submits a routing request under the given request id and
	// returns the candidate set computed for it.
	Suggest(ctx context.Context, requestID string, req models.RoutingRequest) (models.RoutingResult, error)
}
