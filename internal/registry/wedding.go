package registry

import "wedding-map/internal/models"

var weddingVenues = []models.Venue{
	{
		Key:        "annarbor",
		Label:      "Ann Arbor",
		Address:    "Ann Arbor, MI",
		Coordinate: models.Coordinate{Latitude: 42.2808, Longitude: -83.7430},
	},
	{
		Key:        "plymouth",
		Label:      "The Meeting House (Reception)",
		Address:    "499 S. Main St, Plymouth, MI 48170",
		Coordinate: models.Coordinate{Latitude: 42.3686, Longitude: -83.4727},
	},
	{
		Key:        "newport",
		Label:      "Newport Venue (Wedding)",
		Address:    "8033 N. Dixie Hwy, Newport, MI 48166",
		Coordinate: models.Coordinate{Latitude: 42.0298, Longitude: -83.3338},
	},
	{
		Key:        "dtw",
		Label:      "DTW Airport",
		Address:    "9000 Middlebelt Rd, Romulus, MI 48174",
		Coordinate: models.Coordinate{Latitude: 42.2162, Longitude: -83.3551},
	},
}

var weddingRoutes = []models.Route{
	{Start: "annarbor", End: "plymouth", TimeMinutes: 25, DistanceMiles: 17, Link: "https://www.google.com/maps/dir/Ann+Arbor,+MI/The+Meeting+House,+499+S+Main+St,+Plymouth,+MI+48170"},
	{Start: "annarbor", End: "newport", TimeMinutes: 45, DistanceMiles: 39, Link: "https://www.google.com/maps/dir/Ann+Arbor,+MI/8033+N+Dixie+Hwy,+Newport,+MI+48166"},
	{Start: "annarbor", End: "dtw", TimeMinutes: 30, DistanceMiles: 28, Link: "https://www.google.com/maps/dir/Ann+Arbor,+MI/DTW"},
	{Start: "plymouth", End: "newport", TimeMinutes: 50, DistanceMiles: 45, Link: "https://www.google.com/maps/dir/499+S+Main+St,+Plymouth,+MI/8033+N+Dixie+Hwy,+Newport,+MI"},
	{Start: "plymouth", End: "dtw", TimeMinutes: 22, DistanceMiles: 17, Link: "https://www.google.com/maps/dir/499+S+Main+St,+Plymouth,+MI/DTW"},
	{Start: "newport", End: "dtw", TimeMinutes: 25, DistanceMiles: 23, Link: "https://www.google.com/maps/dir/8033+N+Dixie+Hwy,+Newport,+MI/DTW"},
}

// Wedding returns the compiled-in registry for the wedding weekend.
func Wedding() *Registry {
	return MustNew(weddingVenues, weddingRoutes)
}
