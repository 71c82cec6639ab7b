package schedule

import (
	"sort"

	"vetly/models"
)

// PackLanes assigns each interval to the first rendering lane whose last
// interval has already ended, opening a new lane when none fits. Sorted by
// start (end as tie-break), this first-fit packing is optimal: the lane count
// equals the maximum number of simultaneously active intervals.
func PackLanes(intervals []models.TimeInterval) ([]models.LanedItem, int) {
	if len(intervals) == 0 {
		return nil, 0
	}

	sorted := make([]models.TimeInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	items := make([]models.LanedItem, 0, len(sorted))
	var laneEnds []int
	for _, iv := range sorted {
		lane := -1
		for l, end := range laneEnds {
			if end <= iv.Start {
				lane = l
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = iv.End

		items = append(items, models.LanedItem{TimeInterval: iv, Lane: lane})
	}

	return items, len(laneEnds)
}
