package schedule

import "sort"

// Span is a half-open [Start, End) interval in window-relative seconds.
type Span struct {
	Start int
	End   int
}

// MergedBusySeconds coalesces overlapping and contiguous spans and returns the
// total covered seconds. Zero- and negative-length spans are discarded. The
// result is invariant to input order and to duplicate or overlapping entries:
// merging a merged set again yields the same total.
func MergedBusySeconds(spans []Span) int {
	valid := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.End > s.Start {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return 0
	}

	sort.Slice(valid, func(i, j int) bool {
		if valid[i].Start == valid[j].Start {
			return valid[i].End < valid[j].End
		}
		return valid[i].Start < valid[j].Start
	})

	total := 0
	cur := valid[0]
	for _, s := range valid[1:] {
		if s.Start <= cur.End {
			if s.End > cur.End {
				cur.End = s.End
			}
			continue
		}
		total += cur.End - cur.Start
		cur = s
	}
	total += cur.End - cur.Start

	return total
}
