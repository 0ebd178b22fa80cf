package models

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are within range.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Venue represents a named point of interest on the event map, identified by a short stable key and reachable at a postal address.
type Venue struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Address    string     `json:"address"`
	Coordinate Coordinate `json:"coordinate"`
}

// Position is a fix of the visitor's current location.
type Position struct {
	Coordinate
	AccuracyMeters float64 `json:"accuracy_meters"`
}
