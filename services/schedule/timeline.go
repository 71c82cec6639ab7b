package schedule

import (
	"time"

	"vetly/models"
	"vetly/utils"
)

// BuildDayTimeline assembles the full day view from one raw day record: the
// resolved work window, the clamped and lane-packed intervals, and the busy
// and free accounting under both policies. Pure function of its inputs.
func BuildDayTimeline(doctorPimsID string, day models.DayRecord, policy WindowPolicy) models.DayTimeline {
	window := ResolveWorkWindow(day, policy)
	timeline := models.DayTimeline{
		Date:         day.Date,
		DoctorPimsID: doctorPimsID,
		Window:       window,
	}
	if window.Off() {
		timeline.Off = true
		return timeline
	}

	loc := utils.LoadLocation(day.Timezone)
	intervals := clampIntervals(day, window, loc)
	householdAppts := clampHouseholdAppointments(day.Appts, window, loc)
	blocks := clampBlockSpans(day.Blocks, window, loc)

	items, laneCount := PackLanes(intervals)
	length := float64(window.LengthSec)
	for i := range items {
		items[i].OffsetPct = float64(items[i].Start) / length * 100
		items[i].LengthPct = float64(items[i].Duration()) / length * 100
	}

	spans := make([]Span, 0, len(intervals))
	for _, iv := range intervals {
		spans = append(spans, Span{Start: iv.Start, End: iv.End})
	}

	timeline.Items = items
	timeline.LaneCount = laneCount
	timeline.BusySeconds = MergedBusySeconds(spans)
	timeline.DriveSeconds = day.DriveSeconds
	timeline.FreeSeconds = FreeSeconds(window, householdAppts, blocks, day.DriveSeconds, PolicyMergedBusy)
	timeline.GroupedFreeSeconds = FreeSeconds(window, householdAppts, blocks, day.DriveSeconds, PolicyGroupedHousehold)
	return timeline
}

// clampIntervals converts the day's raw records into window-relative
// intervals. Records with unparseable timestamps, or that fall entirely
// outside the window, are skipped.
func clampIntervals(day models.DayRecord, window models.WorkWindow, loc *time.Location) []models.TimeInterval {
	var intervals []models.TimeInterval

	for _, a := range day.Appts {
		if start, end, ok := clampToWindow(a.StartISO, a.EndISO, window, loc); ok {
			intervals = append(intervals, models.TimeInterval{
				ID:    a.ID,
				Start: start,
				End:   end,
				Kind:  models.KindAppointment,
				Title: a.Title,
			})
		}
	}
	for _, b := range day.Blocks {
		if start, end, ok := clampToWindow(b.StartISO, b.EndISO, window, loc); ok {
			intervals = append(intervals, models.TimeInterval{
				ID:    b.ID,
				Start: start,
				End:   end,
				Kind:  models.KindBlock,
				Title: b.Title,
			})
		}
	}

	return intervals
}

func clampHouseholdAppointments(appts []models.Appointment, window models.WorkWindow, loc *time.Location) []HouseholdAppointment {
	out := make([]HouseholdAppointment, 0, len(appts))
	for _, a := range appts {
		start, end, ok := clampToWindow(a.StartISO, a.EndISO, window, loc)
		if !ok {
			continue
		}
		out = append(out, HouseholdAppointment{
			Start:          start,
			End:            end,
			ServiceMinutes: a.ServiceMinutes,
			Lat:            a.Lat,
			Lon:            a.Lon,
			Address1:       a.Address1,
			City:           a.City,
			State:          a.State,
			Zip:            a.Zip,
			Title:          a.Title,
		})
	}
	return out
}

func clampBlockSpans(blocks []models.Block, window models.WorkWindow, loc *time.Location) []Span {
	out := make([]Span, 0, len(blocks))
	for _, b := range blocks {
		if start, end, ok := clampToWindow(b.StartISO, b.EndISO, window, loc); ok {
			out = append(out, Span{Start: start, End: end})
		}
	}
	return out
}

// clampToWindow converts an ISO start/end pair into window-relative seconds
// clamped to [0, window length]. ok is false when either timestamp fails to
// parse or nothing of the interval survives the clamp.
func clampToWindow(startISO, endISO string, window models.WorkWindow, loc *time.Location) (int, int, bool) {
	startSec, ok := utils.ISOToDaySeconds(startISO, loc)
	if !ok {
		return 0, 0, false
	}
	endSec, ok := utils.ISOToDaySeconds(endISO, loc)
	if !ok {
		return 0, 0, false
	}

	start := startSec - window.StartSec
	end := endSec - window.StartSec
	if start < 0 {
		start = 0
	}
	if end > window.LengthSec {
		end = window.LengthSec
	}
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}
