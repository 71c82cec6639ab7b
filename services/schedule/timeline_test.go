package schedule

import (
	"context"
	"errors"
	"testing"

	"vetly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDayTimeline_Assembly(t *testing.T) {
	day := models.DayRecord{
		Date:           "2026-03-10",
		Timezone:       "UTC",
		WorkStartLocal: "09:00",
		WorkEndLocal:   "17:00",
		DriveSeconds:   1800,
		Appts: []models.Appointment{
			{ID: "a1", StartISO: "2026-03-10T09:00:00Z", EndISO: "2026-03-10T10:00:00Z", Title: "Wellness"},
			{ID: "a2", StartISO: "2026-03-10T09:30:00Z", EndISO: "2026-03-10T10:30:00Z", Title: "Vaccines"},
		},
		Blocks: []models.Block{
			{ID: "b1", StartISO: "2026-03-10T12:00:00Z", EndISO: "2026-03-10T13:00:00Z", Title: "Lunch"},
		},
	}

	timeline := BuildDayTimeline("doc-1", day, WindowPolicy{})

	require.False(t, timeline.Off)
	assert.Equal(t, "doc-1", timeline.DoctorPimsID)
	assert.Equal(t, 8*3600, timeline.Window.LengthSec)
	require.Len(t, timeline.Items, 3)
	assert.Equal(t, 2, timeline.LaneCount)

	// Overlapping appointments merge to [0,5400) plus the block hour.
	assert.Equal(t, 5400+3600, timeline.BusySeconds)
	assert.Equal(t, 1800, timeline.DriveSeconds)
	assert.Equal(t, 28800-9000-1800, timeline.FreeSeconds)

	// First item starts at window origin.
	assert.Zero(t, timeline.Items[0].Start)
	assert.InDelta(t, 0.0, timeline.Items[0].OffsetPct, 1e-9)
	assert.InDelta(t, 12.5, timeline.Items[0].LengthPct, 1e-9) // 1h of 8h
}

func TestBuildDayTimeline_ClampsToWindow(t *testing.T) {
	day := models.DayRecord{
		Date:           "2026-03-10",
		WorkStartLocal: "09:00",
		WorkEndLocal:   "10:00",
		Appts: []models.Appointment{
			// Starts before the window and ends after it.
			{ID: "a1", StartISO: "2026-03-10T08:30:00Z", EndISO: "2026-03-10T11:00:00Z"},
		},
	}

	timeline := BuildDayTimeline("doc-1", day, WindowPolicy{})

	require.Len(t, timeline.Items, 1)
	assert.Zero(t, timeline.Items[0].Start)
	assert.Equal(t, 3600, timeline.Items[0].End)
}

func TestBuildDayTimeline_SkipsMalformedRecords(t *testing.T) {
	day := models.DayRecord{
		Date:           "2026-03-10",
		WorkStartLocal: "09:00",
		WorkEndLocal:   "17:00",
		Appts: []models.Appointment{
			{ID: "bad", StartISO: "whenever", EndISO: "2026-03-10T10:00:00Z"},
			{ID: "ok", StartISO: "2026-03-10T10:00:00Z", EndISO: "2026-03-10T11:00:00Z"},
		},
		Blocks: []models.Block{
			// Entirely outside the window.
			{ID: "outside", StartISO: "2026-03-10T18:00:00Z", EndISO: "2026-03-10T19:00:00Z"},
		},
	}

	timeline := BuildDayTimeline("doc-1", day, WindowPolicy{})

	require.Len(t, timeline.Items, 1)
	assert.Equal(t, "ok", timeline.Items[0].ID)
}

func TestBuildDayTimeline_OffDayShortCircuits(t *testing.T) {
	timeline := BuildDayTimeline("doc-1", models.DayRecord{Date: "2026-03-10"}, WindowPolicy{})

	assert.True(t, timeline.Off)
	assert.Empty(t, timeline.Items)
	assert.Zero(t, timeline.FreeSeconds)
}

// fakePims serves canned day records keyed by date.
type fakePims struct {
	days  map[string]models.DayRecord
	calls int
}

func (f *fakePims) DaySchedule(_ context.Context, _, date string) (models.DayRecord, error) {
	f.calls++
	day, ok := f.days[date]
	if !ok {
		return models.DayRecord{}, errors.New("no such day")
	}
	return day, nil
}

func (f *fakePims) DoctorName(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func TestWeekSummaries_DegradesFailedDays(t *testing.T) {
	repo := &fakePims{days: map[string]models.DayRecord{
		"2026-03-09": {
			Date:           "2026-03-09",
			WorkStartLocal: "09:00",
			WorkEndLocal:   "17:00",
			Appts: []models.Appointment{
				{ID: "a1", StartISO: "2026-03-09T09:00:00Z", EndISO: "2026-03-09T10:00:00Z"},
			},
		},
	}}
	svc := &DefaultTimelineService{Pims: repo}

	summaries, err := svc.WeekSummaries(context.Background(), "doc-1", "2026-03-09")

	require.NoError(t, err)
	require.Len(t, summaries, 7)
	assert.False(t, summaries[0].Off)
	assert.Equal(t, 28800-3600, summaries[0].FreeSeconds)
	assert.Equal(t, 1, summaries[0].ApptCount)
	for _, s := range summaries[1:] {
		assert.True(t, s.Off, "missing days degrade to off entries")
	}
}

func TestWeekSummaries_InvalidStart(t *testing.T) {
	svc := &DefaultTimelineService{Pims: &fakePims{}}

	_, err := svc.WeekSummaries(context.Background(), "doc-1", "next monday")
	assert.Error(t, err)
}
