package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"08:00", 8 * 3600, true},
		{"00:00", 0, true},
		{"23:59", 23*3600 + 59*60, true},
		{"09:15:30", 9*3600 + 15*60 + 30, true},
		{" 10:30 ", 10*3600 + 30*60, true},
		{"", 0, false},
		{"8", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12:00:60", 0, false},
		{"noon", 0, false},
		{"12:xx", 0, false},
		{"1:2:3:4", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseClockSeconds(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestISOToDaySeconds(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	sec, ok := ISOToDaySeconds("2026-06-10T13:30:00Z", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 13*3600+30*60, sec)

	// 13:30 UTC is 09:30 in New York during DST.
	sec, ok = ISOToDaySeconds("2026-06-10T13:30:00Z", ny)
	require.True(t, ok)
	assert.Equal(t, 9*3600+30*60, sec)

	// Offset-less timestamps are wall-clock time in the target location, so
	// the clock reads the same regardless of zone.
	sec, ok = ISOToDaySeconds("2026-03-10T09:00:00", ny)
	require.True(t, ok)
	assert.Equal(t, 9*3600, sec)

	sec, ok = ISOToDaySeconds("2026-03-10T09:00:00", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 9*3600, sec)

	_, ok = ISOToDaySeconds("yesterday", time.UTC)
	assert.False(t, ok)
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation(""))
	assert.Equal(t, time.UTC, LoadLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "America/New_York", LoadLocation("America/New_York").String())
}
