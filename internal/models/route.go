package models

// Route is an undirected connection between two venues, annotated with a hard-coded travel estimate and an external directions link.
type Route struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	TimeMinutes   int    `json:"time_minutes"`
	DistanceMiles int    `json:"distance_miles"`
	Link          string `json:"link"`
}

// ID returns the stable identifier "<start>-<end>".
func (r Route) ID() string {
	return r.Start + "-" + r.End
}

// Touches reports whether key is one of the route's endpoints.
func (r Route) Touches(key string) bool {
	return r.Start == key || r.End == key
}

// Other returns the endpoint opposite key.
func (r Route) Other(key string) string {
	if r.Start == key {
		return r.End
	}
	return r.Start
}

// RouteStyle is the displayed opacity and hit-target state of a route line.
type RouteStyle struct {
	Opacity     float64 `json:"opacity"`
	Interactive bool    `json:"interactive"`
}

var (
	// ShownRouteStyle is opaque and clickable.
	ShownRouteStyle = RouteStyle{Opacity: 0.8, Interactive: true}
	// HiddenRouteStyle is fully transparent and never intercepts input.
	HiddenRouteStyle = RouteStyle{Opacity: 0, Interactive: false}
)

// Panel holds the populated fields of the route popup.
type Panel struct {
	Title    string `json:"title"`
	Time     string `json:"time"`
	Distance string `json:"distance"`
	Link     string `json:"link"`
}
