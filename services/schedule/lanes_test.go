package schedule

import (
	"math/rand"
	"testing"

	"vetly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(id string, start, end int) models.TimeInterval {
	return models.TimeInterval{ID: id, Start: start, End: end, Kind: models.KindAppointment}
}

// maxConcurrency is the sweep-line reference: the largest number of intervals
// active at any instant, which is the minimum achievable lane count.
func maxConcurrency(intervals []models.TimeInterval) int {
	type event struct {
		at    int
		delta int
	}
	var events []event
	for _, iv := range intervals {
		events = append(events, event{iv.Start, 1}, event{iv.End, -1})
	}
	// Ends sort before starts at the same instant: half-open intervals.
	best, cur := 0, 0
	for {
		if len(events) == 0 {
			break
		}
		mi := 0
		for i, e := range events {
			if e.at < events[mi].at || (e.at == events[mi].at && e.delta < events[mi].delta) {
				mi = i
			}
		}
		cur += events[mi].delta
		if cur > best {
			best = cur
		}
		events = append(events[:mi], events[mi+1:]...)
	}
	return best
}

func TestPackLanes_Empty(t *testing.T) {
	items, laneCount := PackLanes(nil)
	assert.Nil(t, items)
	assert.Zero(t, laneCount)
}

func TestPackLanes_NoOverlapSingleLane(t *testing.T) {
	items, laneCount := PackLanes([]models.TimeInterval{
		interval("a", 0, 1800),
		interval("b", 1800, 3600),
		interval("c", 5400, 7200),
	})

	require.Len(t, items, 3)
	assert.Equal(t, 1, laneCount)
	for _, it := range items {
		assert.Zero(t, it.Lane)
	}
}

func TestPackLanes_OverlapSplitsLanes(t *testing.T) {
	items, laneCount := PackLanes([]models.TimeInterval{
		interval("a", 0, 3600),
		interval("b", 1800, 5400),
		interval("c", 3600, 7200),
	})

	require.Len(t, items, 3)
	assert.Equal(t, 2, laneCount)
	// c starts exactly when a ends, so it reuses a's lane.
	byID := map[string]models.LanedItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.Equal(t, byID["a"].Lane, byID["c"].Lane)
	assert.NotEqual(t, byID["a"].Lane, byID["b"].Lane)
}

func TestPackLanes_NoLaneCollisions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		var intervals []models.TimeInterval
		n := 2 + rng.Intn(20)
		for i := 0; i < n; i++ {
			start := rng.Intn(28800)
			length := 300 + rng.Intn(7200)
			intervals = append(intervals, interval("", start, start+length))
		}

		items, laneCount := PackLanes(intervals)

		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if items[i].Lane != items[j].Lane {
					continue
				}
				overlap := items[i].Start < items[j].End && items[j].Start < items[i].End
				assert.False(t, overlap,
					"lane %d holds overlapping intervals [%d,%d) and [%d,%d)",
					items[i].Lane, items[i].Start, items[i].End, items[j].Start, items[j].End)
			}
		}

		assert.Equal(t, maxConcurrency(intervals), laneCount,
			"lane count must equal the maximum simultaneous intervals")
	}
}

func TestPackLanes_LaneCountIsMaxLanePlusOne(t *testing.T) {
	items, laneCount := PackLanes([]models.TimeInterval{
		interval("a", 0, 7200),
		interval("b", 0, 7200),
		interval("c", 0, 7200),
	})

	maxLane := 0
	for _, it := range items {
		if it.Lane > maxLane {
			maxLane = it.Lane
		}
	}
	assert.Equal(t, maxLane+1, laneCount)
	assert.Equal(t, 3, laneCount)
}
