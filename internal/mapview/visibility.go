package mapview

import (
	"fmt"

	"wedding-map/internal/models"
	"wedding-map/internal/registry"
)

// VisibilityState is the shown flag of every venue. Route visibility is never
// stored; it is always derived through RouteShown.
type VisibilityState struct {
	venues map[string]bool
}

// NewVisibilityState shows every venue of reg except those listed in hidden.
func NewVisibilityState(reg *registry.Registry, hidden []string) (*VisibilityState, error) {
	s := &VisibilityState{venues: make(map[string]bool)}
	for _, v := range reg.Venues() {
		s.venues[v.Key] = true
	}
	for _, key := range hidden {
		if _, ok := s.venues[key]; !ok {
			return nil, fmt.Errorf("mapview: initial state: %w %q", registry.ErrUnknownVenue, key)
		}
		s.venues[key] = false
	}
	return s, nil
}

// VenueShown reports the flag of key; unknown keys are never shown.
func (s *VisibilityState) VenueShown(key string) bool {
	return s.venues[key]
}

// RouteShown is the single definition of route visibility: both endpoints shown.
func RouteShown(s *VisibilityState, r models.Route) bool {
	return s.VenueShown(r.Start) && s.VenueShown(r.End)
}

// RouteStyleFor maps a route's derived visibility to its line style.
func RouteStyleFor(s *VisibilityState, r models.Route) models.RouteStyle {
	if RouteShown(s, r) {
		return models.ShownRouteStyle
	}
	return models.HiddenRouteStyle
}

// VisibilityController owns venue visibility and keeps routes and the renderer consistent with it.
type VisibilityController struct {
	reg      *registry.Registry
	state    *VisibilityState
	renderer Renderer
	popup    *PopupPresenter
}

// NewVisibilityController wires the controller. A nil renderer is a startup defect and panics.
func NewVisibilityController(reg *registry.Registry, state *VisibilityState, renderer Renderer, popup *PopupPresenter) *VisibilityController {
	if renderer == nil {
		panic("mapview: visibility controller needs a renderer")
	}
	return &VisibilityController{reg: reg, state: state, renderer: renderer, popup: popup}
}

// SetVenueVisible shows or hides a venue's marker, restyles every route
// incident to it, and dismisses the popup. Unknown keys change nothing.
func (c *VisibilityController) SetVenueVisible(key string, visible bool) error {
	if _, ok := c.reg.Venue(key); !ok {
		return fmt.Errorf("mapview: %w %q", registry.ErrUnknownVenue, key)
	}

	c.state.venues[key] = visible
	if visible {
		c.renderer.ShowMarker(key)
	} else {
		c.renderer.HideMarker(key)
	}

	for _, r := range c.reg.IncidentRoutes(key) {
		c.renderer.SetRouteStyle(r.ID(), RouteStyleFor(c.state, r))
	}

	c.popup.Dismiss()
	return nil
}

// Sync pushes the complete state to the renderer. Call it before the first
// frame and whenever the renderer has been rebuilt.
func (c *VisibilityController) Sync() {
	for _, v := range c.reg.Venues() {
		if c.state.VenueShown(v.Key) {
			c.renderer.ShowMarker(v.Key)
		} else {
			c.renderer.HideMarker(v.Key)
		}
	}
	for _, r := range c.reg.Routes() {
		c.renderer.SetRouteStyle(r.ID(), RouteStyleFor(c.state, r))
	}
}

// VenueShown reports whether key is shown.
func (c *VisibilityController) VenueShown(key string) bool {
	return c.state.VenueShown(key)
}

// RouteShown reports whether the route with id is shown. Unknown routes are not.
func (c *VisibilityController) RouteShown(id string) bool {
	r, ok := c.reg.Route(id)
	if !ok {
		return false
	}
	return RouteShown(c.state, r)
}
