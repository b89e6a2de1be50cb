package alert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCompose_Deterministic verifies equal inputs always give the same message.
func TestCompose_Deterministic(t *testing.T) {
	t.Parallel()

	locations := []*Location{
		nil,
		{Latitude: 12.34, Longitude: 56.78},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 0, Longitude: 0},
	}

	for _, status := range []Status{StatusPanic, StatusSafe} {
		for _, loc := range locations {
			first := Compose(status, loc)
			second := Compose(status, loc.Clone())
			require.Equal(t, first, second)
		}
	}
}

// TestCompose_MapLink checks the exact link and the sentinel for a missing location.
func TestCompose_MapLink(t *testing.T) {
	t.Parallel()

	msg := Compose(StatusPanic, &Location{Latitude: 12.34, Longitude: 56.78})
	require.Equal(t, "https://www.google.com/maps?q=12.34,56.78", msg.MapLink)
	require.Equal(t, "🚨 PANIC ALERT 🚨\nLocation: https://www.google.com/maps?q=12.34,56.78", msg.Body)

	msg = Compose(StatusSafe, &Location{Latitude: -6.175392, Longitude: 106.827153})
	require.Equal(t, "https://www.google.com/maps?q=-6.175392,106.827153", msg.MapLink)
	require.True(t, strings.HasPrefix(msg.Body, "✅ SAFE ALERT ✅\n"))

	msg = Compose(StatusSafe, nil)
	require.Equal(t, LocationUnavailable, msg.MapLink)
	require.Equal(t, "✅ SAFE ALERT ✅\nLocation: Location not available", msg.Body)
	require.NotContains(t, msg.Body, "maps?q=")
}

// TestCompose_ZeroCoordinatesAreALocation makes sure 0,0 is not mistaken for a missing location.
func TestCompose_ZeroCoordinatesAreALocation(t *testing.T) {
	t.Parallel()

	msg := Compose(StatusPanic, &Location{})
	require.Equal(t, "https://www.google.com/maps?q=0,0", msg.MapLink)
}
