package routes

import (
	"vetly/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	schedule := r.Group("/api/schedule")
	{
		schedule.GET("/:doctorID/day/:date", hb.GetDayTimeline)
		schedule.GET("/:doctorID/week/:start", hb.GetWeekSummaries)
	}

	routing := r.Group("/api/routing")
	{
		routing.POST("/suggestions", hb.PostRoutingSuggestions)
	}

	r.GET("/api/health", hb.GetHealth)
}
