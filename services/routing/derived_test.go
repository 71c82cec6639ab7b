package routing

import (
	"testing"

	"vetly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOverrunSeconds_Scenario(t *testing.T) {
	// 8h window, 6h booked service, 1h projected drive, 90 min new visit:
	// used 30600s against 28800s means a 30-minute overrun.
	c := models.RoutingCandidate{
		WorkStartLocal:        "08:00",
		EffectiveEndLocal:     "16:00",
		BookedServiceSeconds:  intPtr(21600),
		ProjectedDriveSeconds: intPtr(3600),
	}

	overrun := ComputeOverrunSeconds(c, 90)
	require.NotNil(t, overrun)
	assert.Equal(t, 1800, *overrun)

	// The same inputs clamp remaining whitespace to zero, never negative.
	whitespace := RemainingWhitespaceSeconds(c, 90)
	require.NotNil(t, whitespace)
	assert.Zero(t, *whitespace)
}

func TestRemainingWhitespaceSeconds_Positive(t *testing.T) {
	c := models.RoutingCandidate{
		WorkStartLocal:       "08:00",
		EffectiveEndLocal:    "17:00",
		BookedServiceSeconds: intPtr(7200),
		CurrentDriveSeconds:  intPtr(3600),
	}

	whitespace := RemainingWhitespaceSeconds(c, 30)
	require.NotNil(t, whitespace)
	assert.Equal(t, 9*3600-7200-3600-1800, *whitespace)

	overrun := ComputeOverrunSeconds(c, 30)
	require.NotNil(t, overrun)
	assert.Zero(t, *overrun)
}

func TestDerivedMetrics_UndefinedWithoutWindow(t *testing.T) {
	cases := []struct {
		name string
		c    models.RoutingCandidate
	}{
		{"no clock fields", models.RoutingCandidate{BookedServiceSeconds: intPtr(3600)}},
		{"missing end", models.RoutingCandidate{WorkStartLocal: "08:00"}},
		{"malformed start", models.RoutingCandidate{WorkStartLocal: "morning", EffectiveEndLocal: "17:00"}},
		{"inverted window", models.RoutingCandidate{WorkStartLocal: "17:00", EffectiveEndLocal: "08:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, RemainingWhitespaceSeconds(tc.c, 30))
			assert.Nil(t, ComputeOverrunSeconds(tc.c, 30))
		})
	}
}

func TestDerivedMetrics_ProjectedDrivePreferred(t *testing.T) {
	c := models.RoutingCandidate{
		WorkStartLocal:        "08:00",
		EffectiveEndLocal:     "17:00",
		ProjectedDriveSeconds: intPtr(3600),
		CurrentDriveSeconds:   intPtr(600),
	}

	whitespace := RemainingWhitespaceSeconds(c, 0)
	require.NotNil(t, whitespace)
	assert.Equal(t, 9*3600-3600, *whitespace)
}

func TestNormalizeBookedServiceSeconds(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"zero passes through", 0, 0},
		{"minutes coerced", 360, 360 * 60},
		{"just under ceiling coerced", 1439, 1439 * 60},
		{"seconds kept", 21600, 21600},
		{"ceiling kept", 1440, 1440},
		{"negative passes through", -5, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeBookedServiceSeconds(tc.in))
		})
	}
}

func TestAttachDerivedMetrics(t *testing.T) {
	options := []models.UnifiedOption{
		{RoutingCandidate: models.RoutingCandidate{
			WorkStartLocal:    "08:00",
			EffectiveEndLocal: "17:00",
		}},
		{RoutingCandidate: models.RoutingCandidate{}},
	}

	AttachDerivedMetrics(options, 60)

	require.NotNil(t, options[0].RemainingWhitespaceSec)
	assert.Equal(t, 9*3600-3600, *options[0].RemainingWhitespaceSec)
	assert.Nil(t, options[1].RemainingWhitespaceSec)
	assert.Nil(t, options[1].OverrunSec)
}
