package routing

import (
	"context"

	"vetly/models"
	upstream "vetly/upstream/routing"
	"vetly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSuggestionService is the production suggestion pipeline: submit to
// the routing API, reject stale results, normalize, resolve doctor names,
// attach derived metrics, rank.
type DefaultSuggestionService struct {
	Routing upstream.Repository
	Names   *NameResolver
}

func (s *DefaultSuggestionService) Suggestions(ctx context.Context, req models.RoutingRequest) ([]models.UnifiedOption, error) {
	logger := utils.GetLogger()

	requestID := uuid.New().String()
	result, err := s.Routing.Suggest(ctx, requestID, req)
	if err != nil {
		return nil, err
	}

	// A result tagged with a different request id belongs to some earlier
	// submission. Displaying it would mix candidate sets, so refuse it.
	if result.RequestID != "" && result.RequestID != requestID {
		logger.Warn("stale routing result",
			zap.String("submitted", requestID), zap.String("received", result.RequestID))
		return nil, ErrStaleRoutingResult
	}

	// Candidates lacking their own id are attributed to this submission, so
	// feedback always correlates with the request that produced them.
	defaults := NormalizeDefaults{
		DoctorPimsID:     req.DoctorPimsID,
		DoctorName:       req.DoctorName,
		RoutingRequestID: requestID,
	}

	options := Normalize(result, defaults)
	s.resolveNames(ctx, options)
	AttachDerivedMetrics(options, req.NewServiceMinutes)
	return Rank(options), nil
}

// resolveNames fills in missing doctor names. A failed lookup leaves the name
// blank; identity display is best-effort and never blocks the suggestion list.
func (s *DefaultSuggestionService) resolveNames(ctx context.Context, options []models.UnifiedOption) {
	if s.Names == nil {
		return
	}
	logger := utils.GetLogger()
	for i := range options {
		if options[i].ResolvedName != "" || options[i].DoctorPimsID == "" {
			continue
		}
		name, err := s.Names.Resolve(ctx, options[i].DoctorPimsID)
		if err != nil {
			logger.Warn("doctor name resolution failed",
				zap.String("doctorPimsID", options[i].DoctorPimsID), zap.Error(err))
			continue
		}
		options[i].ResolvedName = name
	}
}
