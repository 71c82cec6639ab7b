package routing

import (
	"vetly/models"
	"vetly/utils"
)

// The routing backend sometimes reports bookedServiceSeconds in minutes
// rather than seconds. Below this threshold a value is assumed to be minutes:
// a real seconds figure for a day's booked service is in the thousands, while
// a minutes figure tops out at 1440. A data-quality problem the upstream API
// should fix; normalized here in one place instead of guessed at per use site.
const bookedServiceMinutesCeiling = 1440

// NormalizeBookedServiceSeconds coerces an ambiguous booked-service figure
// into seconds.
func NormalizeBookedServiceSeconds(v int) int {
	if v > 0 && v < bookedServiceMinutesCeiling {
		return v * 60
	}
	return v
}

// AttachDerivedMetrics fills the display-only whitespace and overrun fields
// on each option. Options missing the work-window clock fields keep nil
// metrics: undefined beats a fabricated number.
func AttachDerivedMetrics(options []models.UnifiedOption, newServiceMinutes int) {
	for i := range options {
		options[i].RemainingWhitespaceSec = RemainingWhitespaceSeconds(options[i].RoutingCandidate, newServiceMinutes)
		options[i].OverrunSec = ComputeOverrunSeconds(options[i].RoutingCandidate, newServiceMinutes)
	}
}

// RemainingWhitespaceSeconds estimates the free time left on the candidate's
// day after hypothetically booking the new appointment: window minus drive
// minus booked service minus the new service. Clamped to zero; nil when the
// candidate lacks its work-window fields.
func RemainingWhitespaceSeconds(c models.RoutingCandidate, newServiceMinutes int) *int {
	window, used, ok := windowAndUsed(c, newServiceMinutes)
	if !ok {
		return nil
	}
	remaining := window - used
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// ComputeOverrunSeconds reports how far past the end of day the candidate's
// schedule would run with the new appointment booked: max(0, used - window).
// Nil when the candidate lacks its work-window fields.
func ComputeOverrunSeconds(c models.RoutingCandidate, newServiceMinutes int) *int {
	window, used, ok := windowAndUsed(c, newServiceMinutes)
	if !ok {
		return nil
	}
	overrun := used - window
	if overrun < 0 {
		overrun = 0
	}
	return &overrun
}

// windowAndUsed computes the candidate day's window length and its
// hypothetical used time. ok is false when either clock field is missing or
// malformed.
func windowAndUsed(c models.RoutingCandidate, newServiceMinutes int) (window, used int, ok bool) {
	startSec, startOK := utils.ParseClockSeconds(c.WorkStartLocal)
	endSec, endOK := utils.ParseClockSeconds(c.EffectiveEndLocal)
	if !startOK || !endOK || endSec <= startSec {
		return 0, 0, false
	}
	window = endSec - startSec

	drive := 0
	switch {
	case c.ProjectedDriveSeconds != nil:
		drive = *c.ProjectedDriveSeconds
	case c.CurrentDriveSeconds != nil:
		drive = *c.CurrentDriveSeconds
	}

	booked := 0
	if c.BookedServiceSeconds != nil {
		booked = NormalizeBookedServiceSeconds(*c.BookedServiceSeconds)
	}

	used = drive + booked + newServiceMinutes*60
	return window, used, true
}
