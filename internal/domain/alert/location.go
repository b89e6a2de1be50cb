package alert

import (
	"fmt"
	"math"
)

const (
	maxLatitude  = 90
	maxLongitude = 180
)

// Location is a single coordinate snapshot.
// An absent location is represented by a nil *Location, never by zero values.
type Location struct {
	Latitude  float64
	Longitude float64
}

// NewLocation validates coordinates and returns a location.
func NewLocation(latitude, longitude float64) (*Location, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) || math.Abs(latitude) > maxLatitude {
		return nil, fmt.Errorf("%w: latitude %v", ErrInvalidLocation, latitude)
	}

	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || math.Abs(longitude) > maxLongitude {
		return nil, fmt.Errorf("%w: longitude %v", ErrInvalidLocation, longitude)
	}

	return &Location{
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// LocationFromOptional builds a location from two optional coordinates.
// Both missing yields nil; exactly one missing is an error.
func LocationFromOptional(latitude, longitude *float64) (*Location, error) {
	switch {
	case latitude == nil && longitude == nil:
		return nil, nil //nolint:nilnil // Absent location is a valid outcome.
	case latitude == nil || longitude == nil:
		return nil, fmt.Errorf("%w: latitude and longitude must be provided together", ErrInvalidLocation)
	default:
		return NewLocation(*latitude, *longitude)
	}
}

// Clone returns a copy of the location, nil-safe.
func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}

	cloned := *l

	return &cloned
}
