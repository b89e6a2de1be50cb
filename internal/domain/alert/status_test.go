package alert

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseStatus accepts only triggerable statuses.
func TestParseStatus(t *testing.T) {
	t.Parallel()

	s, err := ParseStatus("PANIC")
	require.NoError(t, err)
	require.Equal(t, StatusPanic, s)

	s, err = ParseStatus(" safe ")
	require.NoError(t, err)
	require.Equal(t, StatusSafe, s)

	for _, bad := range []string{"", "unset", "help"} {
		_, err = ParseStatus(bad)
		require.ErrorIs(t, err, ErrInvalidStatus)
	}

	require.Equal(t, "unset", Status("").String())
}

// TestLocationFromOptional rejects partial and out-of-range coordinates.
func TestLocationFromOptional(t *testing.T) {
	t.Parallel()

	lat, lng := 12.34, 56.78

	loc, err := LocationFromOptional(nil, nil)
	require.NoError(t, err)
	require.Nil(t, loc)

	loc, err = LocationFromOptional(&lat, &lng)
	require.NoError(t, err)
	require.Equal(t, &Location{Latitude: lat, Longitude: lng}, loc)

	_, err = LocationFromOptional(&lat, nil)
	require.ErrorIs(t, err, ErrInvalidLocation)

	_, err = LocationFromOptional(nil, &lng)
	require.ErrorIs(t, err, ErrInvalidLocation)

	_, err = NewLocation(91, 0)
	require.ErrorIs(t, err, ErrInvalidLocation)

	_, err = NewLocation(0, -180.5)
	require.ErrorIs(t, err, ErrInvalidLocation)

	_, err = NewLocation(math.NaN(), 0)
	require.ErrorIs(t, err, ErrInvalidLocation)
}

// TestUserStatusClone verifies Clone deep-copies the location and handles nil safely.
func TestUserStatusClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*UserStatus)(nil).Clone())

	s := &UserStatus{
		UserID:    1,
		Status:    StatusSafe,
		Location:  &Location{Latitude: 1, Longitude: 2},
		UpdatedAt: time.Now(),
	}

	c := s.Clone()
	require.Equal(t, s, c)
	require.NotSame(t, s.Location, c.Location)
}

// TestIdentityValid rejects nil and zero identities.
func TestIdentityValid(t *testing.T) {
	t.Parallel()

	require.False(t, (*Identity)(nil).Valid())
	require.False(t, (&Identity{}).Valid())
	require.True(t, (&Identity{UserID: 3}).Valid())
}

// TestContactValidate requires both name and phone.
func TestContactValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, (&Contact{Name: " ", Phone: "+1"}).Validate(), ErrInvalidContact)
	require.ErrorIs(t, (&Contact{Name: "Mom"}).Validate(), ErrInvalidContact)
	require.NoError(t, (&Contact{Name: "Mom", Phone: "+15550001"}).Validate())
}
