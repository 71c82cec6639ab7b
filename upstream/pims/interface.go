package pims

import (
	"context"

	"vetly/models"
)

// Repository defines read access to the practice-management (PIMS) scheduling
// API. It is the only data source for day schedules; nothing is persisted on
// our side beyond short-TTL caching.
type Repository interface {
	// DaySchedule returns one doctor-day of raw appointments and blocks.
	DaySchedule(ctx context.Context, doctorPimsID, date string) (models.DayRecord, error)

	// DoctorName resolves a doctor's display name by PIMS id.
	DoctorName(ctx context.Context, doctorPimsID string) (string, error)
}
