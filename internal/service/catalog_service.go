package service

import (
	"fmt"

	"wedding-map/internal/mapview"
	"wedding-map/internal/models"
	"wedding-map/internal/registry"
)

// RouteView is a route together with its derived visibility and popup fields.
type RouteView struct {
	models.Route
	ID    string            `json:"id"`
	Shown bool              `json:"shown"`
	Style models.RouteStyle `json:"style"`
	Panel models.Panel      `json:"panel"`
}

// CatalogService exposes the compiled venue registry and route table.
type CatalogService struct {
	reg *registry.Registry
}

// NewCatalogService creates a new catalog service
func NewCatalogService(reg *registry.Registry) *CatalogService {
	return &CatalogService{reg: reg}
}

// Venues returns every venue in registration order
func (s *CatalogService) Venues() []models.Venue {
	return s.reg.Venues()
}

// Venue looks up a single venue by key
func (s *CatalogService) Venue(key string) (*models.Venue, error) {
	v, ok := s.reg.Venue(key)
	if !ok {
		return nil, fmt.Errorf("service: %w %q", registry.ErrUnknownVenue, key)
	}
	return &v, nil
}

// Routes returns every route with visibility derived as if the venues in hidden were toggled off
func (s *CatalogService) Routes(hidden []string) ([]RouteView, error) {
	state, err := mapview.NewVisibilityState(s.reg, hidden)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	routes := s.reg.Routes()
	views := make([]RouteView, 0, len(routes))
	for _, r := range routes {
		views = append(views, RouteView{
			Route: r,
			ID:    r.ID(),
			Shown: mapview.RouteShown(state, r),
			Style: mapview.RouteStyleFor(state, r),
			Panel: mapview.BuildPanel(s.reg, r),
		})
	}
	return views, nil
}
