package schedule

import "vetly/models"

// FreePolicy selects how busy time is charged against the work window.
type FreePolicy int

const (
	// PolicyMergedBusy merges appointments and blocks together before
	// subtracting, so simultaneous overlap is never double-counted.
	PolicyMergedBusy FreePolicy = iota

	// PolicyGroupedHousehold charges blocks at face value and appointments
	// through household grouping, so a multi-pet visit counts once.
	PolicyGroupedHousehold
)

// FreeSeconds computes the unscheduled, non-driving seconds left in the work
// window under the given policy. The result is clamped to zero; overscheduled
// days surface through the overrun metric, never as negative free time.
// An off day (zero-length window) yields zero without any computation.
func FreeSeconds(window models.WorkWindow, appts []HouseholdAppointment, blocks []Span, driveSeconds int, policy FreePolicy) int {
	if window.Off() {
		return 0
	}

	var busy int
	switch policy {
	case PolicyGroupedHousehold:
		busy = GroupedAppointmentSeconds(appts)
		for _, b := range blocks {
			if b.End > b.Start {
				busy += b.End - b.Start
			}
		}
	default:
		spans := make([]Span, 0, len(appts)+len(blocks))
		for _, a := range appts {
			spans = append(spans, Span{Start: a.Start, End: a.End})
		}
		spans = append(spans, blocks...)
		busy = MergedBusySeconds(spans)
	}

	free := window.LengthSec - busy - driveSeconds
	if free < 0 {
		return 0
	}
	return free
}
