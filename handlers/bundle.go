package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every registered endpoint handler, assembled once in
// main and handed to route registration.
type HandlerBundle struct {
	// Schedule endpoints.
	GetDayTimeline   gin.HandlerFunc
	GetWeekSummaries gin.HandlerFunc

	// Routing endpoints.
	PostRoutingSuggestions gin.HandlerFunc

	// Ops endpoints.
	GetHealth gin.HandlerFunc
}
