package handlers

import (
	"errors"
	"net/http"

	"vetly/models"
	"vetly/services/routing"
	"vetly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoutingHandler serves ordered routing suggestions.
type RoutingHandler struct {
	Suggestions routing.SuggestionService
	Logger      *zap.Logger
}

func NewRoutingHandler(svc routing.SuggestionService, logger *zap.Logger) *RoutingHandler {
	return &RoutingHandler{Suggestions: svc, Logger: logger}
}

// PostSuggestions handles POST /api/routing/suggestions.
func (h *RoutingHandler) PostSuggestions(c *gin.Context) {
	var req models.RoutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.NewServiceMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "newServiceMinutes must be positive")
		return
	}

	options, err := h.Suggestions.Suggestions(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, routing.ErrStaleRoutingResult) {
			utils.JSONError(c, http.StatusConflict, "stale routing result", "please resubmit the request")
			return
		}
		h.Logger.Error("routing suggestions failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to compute suggestions", "routing service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}
