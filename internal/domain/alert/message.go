package alert

import "strconv"

const (
	// MapsBaseURL is the page that renders a coordinate pair for the recipient.
	MapsBaseURL = "https://www.google.com/maps"
	// LocationUnavailable replaces the map link when no location was supplied.
	LocationUnavailable = "Location not available"

	panicHeader = "🚨 PANIC ALERT 🚨"
	safeHeader  = "✅ SAFE ALERT ✅"
)

// Message is the text delivered to every contact of one alert.
type Message struct {
	// Status is the status the message announces.
	Status Status
	// Body is the full SMS text.
	Body string
	// MapLink is a maps URL or LocationUnavailable.
	MapLink string
}

// Compose builds the alert message for a status and an optional location.
// It is a pure function: equal inputs always produce equal messages.
func Compose(status Status, location *Location) Message {
	link := MapLink(location)

	header := safeHeader
	if status == StatusPanic {
		header = panicHeader
	}

	return Message{
		Status:  status,
		Body:    header + "\nLocation: " + link,
		MapLink: link,
	}
}

// MapLink renders a maps URL for the location, or LocationUnavailable for nil.
// Coordinates keep the shortest representation that round-trips to the same float.
func MapLink(location *Location) string {
	if location == nil {
		return LocationUnavailable
	}

	return MapsBaseURL + "?q=" + formatCoordinate(location.Latitude) + "," + formatCoordinate(location.Longitude)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
