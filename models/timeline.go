package models

// IntervalKind distinguishes the two busy-interval sources on a day timeline.
type IntervalKind string

const (
	KindAppointment IntervalKind = "appointment"
	KindBlock       IntervalKind = "block"
)

// WorkWindow is the authoritative working-hours interval for one day, in
// seconds since midnight of the day's local timezone.
type WorkWindow struct {
	Timezone            string `json:"timezone"`
	StartSec            int    `json:"startSec"`
	EndSec              int    `json:"endSec"`
	LengthSec           int    `json:"lengthSec"`
	HasDeclaredSchedule bool   `json:"hasDeclaredSchedule"`
}

// Off reports whether the day has no usable work window.
func (w WorkWindow) Off() bool {
	return w.LengthSec <= 0
}

// TimeInterval is one busy interval, expressed relative to the work-window
// origin and clamped into [0, window length].
type TimeInterval struct {
	ID    string       `json:"id"`
	Start int          `json:"start"`
	End   int          `json:"end"`
	Kind  IntervalKind `json:"kind"`
	Title string       `json:"title,omitempty"`
}

func (ti TimeInterval) Duration() int {
	return ti.End - ti.Start
}

// LanedItem is a TimeInterval placed on a rendering track. Two items that
// overlap in time never share a lane. The percent fields position the item
// within the work window for the timeline view.
type LanedItem struct {
	TimeInterval
	Lane      int     `json:"lane"`
	OffsetPct float64 `json:"offsetPct"`
	LengthPct float64 `json:"lengthPct"`
}

// DayTimeline is the assembled day view handed to the UI: the resolved window,
// the packed intervals and the busy/free accounting for the day.
type DayTimeline struct {
	Date         string      `json:"date"`
	DoctorPimsID string      `json:"doctorPimsId"`
	Off          bool        `json:"off"`
	Window       WorkWindow  `json:"window"`
	Items        []LanedItem `json:"items,omitempty"`
	LaneCount    int         `json:"laneCount"`

	BusySeconds        int `json:"busySeconds"`
	DriveSeconds       int `json:"driveSeconds"`
	FreeSeconds        int `json:"freeSeconds"`
	GroupedFreeSeconds int `json:"groupedFreeSeconds"`
}

// DaySummary is the per-day rollup used by week and month views.
type DaySummary struct {
	Date          string `json:"date"`
	Off           bool   `json:"off"`
	WindowSeconds int    `json:"windowSeconds"`
	BusySeconds   int    `json:"busySeconds"`
	DriveSeconds  int    `json:"driveSeconds"`
	FreeSeconds   int    `json:"freeSeconds"`
	ApptCount     int    `json:"apptCount"`
}
