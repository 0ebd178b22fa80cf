package mapview

import "wedding-map/internal/models"

// Renderer is the rendering adapter the map state drives. Implementations
// place markers and lines on a canvas; they hold no visibility state of their own.
type Renderer interface {
	ShowMarker(venueKey string)
	HideMarker(venueKey string)
	SetRouteStyle(routeID string, style models.RouteStyle)
	ShowPopup(panel models.Panel)
	HidePopup()
}
