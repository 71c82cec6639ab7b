package schedule

import (
	"context"

	"vetly/models"
)

// TimelineService exposes the day and week schedule views consumed by the UI.
type TimelineService interface {
	// DayTimeline returns the packed, accounted timeline for one doctor-day.
	DayTimeline(ctx context.Context, doctorPimsID, date string) (models.DayTimeline, error)

	// WeekSummaries returns seven per-day free-time rollups starting at weekStart.
	WeekSummaries(ctx context.Context, doctorPimsID, weekStart string) ([]models.DaySummary, error)
}
