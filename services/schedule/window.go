package schedule

import (
	"vetly/models"
	"vetly/utils"
)

// WindowPolicy controls how a day with no declared schedule and no events
// resolves. The default treats such a day as off; enabling DefaultWindow makes
// it resolve to [DefaultStartSec, DefaultEndSec) instead. Whichever policy is
// configured applies uniformly to every call site through this one resolver.
type WindowPolicy struct {
	DefaultWindow   bool
	DefaultStartSec int
	DefaultEndSec   int
}

// ResolveWorkWindow produces the authoritative work window for one day.
//
// Precedence: a parseable declared workStartLocal/workEndLocal pair wins; next
// the [min, max] span over all appointment/block timestamps in the day's
// timezone; failing both, the policy fallback or an off day. Malformed clock
// strings or timestamps never error, they just drop out of consideration.
func ResolveWorkWindow(day models.DayRecord, policy WindowPolicy) models.WorkWindow {
	window := models.WorkWindow{Timezone: day.Timezone}

	startSec, startOK := utils.ParseClockSeconds(day.WorkStartLocal)
	endSec, endOK := utils.ParseClockSeconds(day.WorkEndLocal)
	if startOK && endOK && endSec > startSec {
		window.StartSec = startSec
		window.EndSec = endSec
		window.LengthSec = endSec - startSec
		window.HasDeclaredSchedule = true
		return window
	}

	loc := utils.LoadLocation(day.Timezone)
	var stamps []int
	for _, a := range day.Appts {
		if sec, ok := utils.ISOToDaySeconds(a.StartISO, loc); ok {
			stamps = append(stamps, sec)
		}
		if sec, ok := utils.ISOToDaySeconds(a.EndISO, loc); ok {
			stamps = append(stamps, sec)
		}
	}
	for _, b := range day.Blocks {
		if sec, ok := utils.ISOToDaySeconds(b.StartISO, loc); ok {
			stamps = append(stamps, sec)
		}
		if sec, ok := utils.ISOToDaySeconds(b.EndISO, loc); ok {
			stamps = append(stamps, sec)
		}
	}

	if len(stamps) >= 2 {
		minSec, maxSec := stamps[0], stamps[0]
		for _, s := range stamps[1:] {
			if s < minSec {
				minSec = s
			}
			if s > maxSec {
				maxSec = s
			}
		}
		if maxSec > minSec {
			window.StartSec = minSec
			window.EndSec = maxSec
			window.LengthSec = maxSec - minSec
			return window
		}
	}

	if policy.DefaultWindow && policy.DefaultEndSec > policy.DefaultStartSec {
		window.StartSec = policy.DefaultStartSec
		window.EndSec = policy.DefaultEndSec
		window.LengthSec = policy.DefaultEndSec - policy.DefaultStartSec
		return window
	}

	// Off day: zero-length window, no further computation happens.
	return window
}
