package routing

import (
	"math"
	"sort"

	"vetly/models"
)

// Added drive above this threshold lets an empty-day candidate jump ahead of
// a non-empty one. Below it, drive-ascending order stands.
const emptyDayDriveThresholdSec = 20 * 60

// Rank orders routing options into the sequence shown to the user. A winner,
// when present, stays first and is never resorted. The alternates follow a
// deterministic total order: empty-day preference (only against a competitor
// whose added drive exceeds the 20-minute threshold), added drive ascending,
// soonest date and start, preference score descending, insertion index, and
// finally original order. Sorting the same input twice yields identical
// output.
func Rank(options []models.UnifiedOption) []models.UnifiedOption {
	if len(options) == 0 {
		return options
	}

	ranked := make([]models.UnifiedOption, len(options))
	copy(ranked, options)

	// Pull the winner to the front before sorting the alternates, wherever it
	// landed in the input. Shifting keeps the alternates in their original
	// relative order for the stable sort below.
	rest := ranked
	for i := range ranked {
		if ranked[i].IsWinner {
			winner := ranked[i]
			copy(ranked[1:i+1], ranked[:i])
			ranked[0] = winner
			rest = ranked[1:]
			break
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return candidateLess(rest[i], rest[j])
	})

	return ranked
}

func candidateLess(a, b models.UnifiedOption) bool {
	// Empty-day preference: an empty day beats a candidate whose added drive
	// is over the threshold. A candidate under the threshold is cheap enough
	// that emptiness does not override drive ordering.
	if a.EmptyDay != b.EmptyDay {
		if a.EmptyDay && driveOrInf(b) > emptyDayDriveThresholdSec {
			return true
		}
		if b.EmptyDay && driveOrInf(a) > emptyDayDriveThresholdSec {
			return false
		}
	}

	if da, db := driveOrInf(a), driveOrInf(b); da != db {
		return da < db
	}

	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if sa, sb := startOrInf(a), startOrInf(b); sa != sb {
		return sa < sb
	}

	if pa, pb := prefOrZero(a), prefOrZero(b); pa != pb {
		return pa > pb
	}

	return a.InsertionIndex < b.InsertionIndex
}

// driveOrInf sorts candidates with unknown added drive last.
func driveOrInf(o models.UnifiedOption) int {
	if o.AddedDriveSeconds == nil {
		return math.MaxInt
	}
	return *o.AddedDriveSeconds
}

func startOrInf(o models.UnifiedOption) int {
	if o.SuggestedStartSec == nil {
		return math.MaxInt
	}
	return *o.SuggestedStartSec
}

func prefOrZero(o models.UnifiedOption) float64 {
	if o.PrefScore == nil {
		return 0
	}
	return *o.PrefScore
}
