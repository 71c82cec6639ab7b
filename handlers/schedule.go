package handlers

import (
	"net/http"
	"time"

	"vetly/services/schedule"
	"vetly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the day-timeline and week-rollup views.
type ScheduleHandler struct {
	Timeline schedule.TimelineService
	Warmer   TimelineWarmer
	Logger   *zap.Logger
}

// TimelineWarmer enqueues background prefetch of adjacent days after a day
// view is served. Optional; a nil warmer disables prefetching.
type TimelineWarmer interface {
	EnqueueWarm(doctorPimsID, date string) error
}

func NewScheduleHandler(svc schedule.TimelineService, warmer TimelineWarmer, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Timeline: svc, Warmer: warmer, Logger: logger}
}

// GetDayTimeline handles GET /api/schedule/:doctorID/day/:date.
func (h *ScheduleHandler) GetDayTimeline(c *gin.Context) {
	doctorID := c.Param("doctorID")
	date := c.Param("date")
	if doctorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "doctorID and date are required")
		return
	}

	timeline, err := h.Timeline.DayTimeline(c.Request.Context(), doctorID, date)
	if err != nil {
		h.Logger.Error("day timeline failed",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to load day schedule", "upstream scheduling service unavailable")
		return
	}

	if h.Warmer != nil {
		for _, adjacent := range adjacentDates(date) {
			if err := h.Warmer.EnqueueWarm(doctorID, adjacent); err != nil {
				h.Logger.Debug("warm enqueue failed", zap.String("date", adjacent), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, timeline)
}

// GetWeekSummaries handles GET /api/schedule/:doctorID/week/:start.
func (h *ScheduleHandler) GetWeekSummaries(c *gin.Context) {
	doctorID := c.Param("doctorID")
	weekStart := c.Param("start")
	if doctorID == "" || weekStart == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "doctorID and week start are required")
		return
	}

	summaries, err := h.Timeline.WeekSummaries(c.Request.Context(), doctorID, weekStart)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to load week", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": summaries})
}

// adjacentDates returns the dates either side of an ISO date, for prefetch.
// A malformed date yields nothing.
func adjacentDates(date string) []string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	return []string{
		d.AddDate(0, 0, -1).Format("2006-01-02"),
		d.AddDate(0, 0, 1).Format("2006-01-02"),
	}
}
