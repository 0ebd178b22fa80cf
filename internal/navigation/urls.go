package navigation

import (
	"net/url"
	"strconv"
	"strings"

	"wedding-map/internal/models"
)

const (
	directionsBase = "https://www.google.com/maps/dir/?api=1"
	searchBase     = "https://www.google.com/maps/search/?api=1"

	// TravelMode is the only mode the map ever requests.
	TravelMode = "driving"
)

// QueryEscape only leaves [A-Za-z0-9-_.~] alone; encodeURIComponent also keeps these.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s the way browsers' encodeURIComponent does.
func EncodeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// DirectionsURL builds a driving directions request from origin to address.
func DirectionsURL(origin models.Coordinate, address string) string {
	var b strings.Builder
	b.WriteString(directionsBase)
	b.WriteString("&origin=")
	b.WriteString(formatDegrees(origin.Latitude))
	b.WriteString(",")
	b.WriteString(formatDegrees(origin.Longitude))
	b.WriteString("&destination=")
	b.WriteString(EncodeComponent(address))
	b.WriteString("&travelmode=")
	b.WriteString(TravelMode)
	return b.String()
}

// SearchURL builds an address-only lookup, used when no origin is known.
func SearchURL(address string) string {
	return searchBase + "&query=" + EncodeComponent(address)
}

// formatDegrees prints the shortest exact form with at least one decimal, so 42 becomes "42.0".
func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
