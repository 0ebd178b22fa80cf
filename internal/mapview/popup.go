package mapview

import (
	"fmt"

	"wedding-map/internal/models"
	"wedding-map/internal/registry"
)

// PopupPresenter shows one route's details at a time in the shared panel.
type PopupPresenter struct {
	reg      *registry.Registry
	state    *VisibilityState
	renderer Renderer
	active   *models.Route
}

// NewPopupPresenter wires the presenter. A nil renderer panics.
func NewPopupPresenter(reg *registry.Registry, state *VisibilityState, renderer Renderer) *PopupPresenter {
	if renderer == nil {
		panic("mapview: popup presenter needs a renderer")
	}
	return &PopupPresenter{reg: reg, state: state, renderer: renderer}
}

// ActivateRoute shows the panel for route id if that route is currently shown.
// It reports whether the panel was shown.
func (p *PopupPresenter) ActivateRoute(id string) (bool, error) {
	r, ok := p.reg.Route(id)
	if !ok {
		return false, fmt.Errorf("mapview: %w %q", registry.ErrUnknownRoute, id)
	}
	if !RouteShown(p.state, r) {
		return false, nil
	}

	p.active = &r
	p.renderer.ShowPopup(p.Panel(r))
	return true, nil
}

// Dismiss clears the active route and hides the panel.
func (p *PopupPresenter) Dismiss() {
	p.active = nil
	p.renderer.HidePopup()
}

// Active returns the route the panel describes, if any.
func (p *PopupPresenter) Active() (models.Route, bool) {
	if p.active == nil {
		return models.Route{}, false
	}
	return *p.active, true
}

// Panel formats the popup fields for r.
func (p *PopupPresenter) Panel(r models.Route) models.Panel {
	return BuildPanel(p.reg, r)
}

// BuildPanel formats the popup fields for r using the registry's venue labels.
func BuildPanel(reg *registry.Registry, r models.Route) models.Panel {
	start, _ := reg.Venue(r.Start)
	end, _ := reg.Venue(r.End)
	return models.Panel{
		Title:    fmt.Sprintf("%s ↔ %s", start.Label, end.Label),
		Time:     fmt.Sprintf("Estimate: %d min", r.TimeMinutes),
		Distance: fmt.Sprintf("Distance: %d mi", r.DistanceMiles),
		Link:     r.Link,
	}
}
