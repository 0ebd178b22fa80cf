package registry

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"wedding-map/internal/models"
)

var (
	// ErrUnknownVenue is returned when a key does not name a registered venue.
	ErrUnknownVenue = errors.New("unknown venue")
	// ErrUnknownRoute is returned when an ID does not name a registered route.
	ErrUnknownRoute = errors.New("unknown route")
)

// Registry holds the venue registry and the route table for one map.
// It is immutable once built.
type Registry struct {
	venues   []models.Venue
	byKey    map[string]int
	routes   []models.Route
	byID     map[string]int
	incident map[string][]int
}

// New validates venues and routes and builds a registry from them.
func New(venues []models.Venue, routes []models.Route) (*Registry, error) {
	r := &Registry{
		byKey:    make(map[string]int, len(venues)),
		byID:     make(map[string]int, len(routes)),
		incident: make(map[string][]int, len(venues)),
	}

	for _, v := range venues {
		if v.Key == "" {
			return nil, fmt.Errorf("registry: venue with empty key")
		}
		// '-' separates the keys in a route ID
		if strings.Contains(v.Key, "-") {
			return nil, fmt.Errorf("registry: venue %q: key must not contain '-'", v.Key)
		}
		if _, dup := r.byKey[v.Key]; dup {
			return nil, fmt.Errorf("registry: duplicate venue %q", v.Key)
		}
		if !v.Coordinate.Valid() {
			return nil, fmt.Errorf("registry: venue %q: coordinate out of range: %+v", v.Key, v.Coordinate)
		}
		if v.Label == "" {
			return nil, fmt.Errorf("registry: venue %q: empty label", v.Key)
		}
		if v.Address == "" {
			return nil, fmt.Errorf("registry: venue %q: empty address", v.Key)
		}
		r.byKey[v.Key] = len(r.venues)
		r.venues = append(r.venues, v)
	}

	pairs := make(map[[2]string]string, len(routes))
	for _, rt := range routes {
		for _, key := range []string{rt.Start, rt.End} {
			if _, ok := r.byKey[key]; !ok {
				return nil, fmt.Errorf("registry: route %q: %w %q", rt.ID(), ErrUnknownVenue, key)
			}
		}
		if rt.Start == rt.End {
			return nil, fmt.Errorf("registry: route %q: self-loop", rt.ID())
		}
		pair := [2]string{rt.Start, rt.End}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		if prev, dup := pairs[pair]; dup {
			return nil, fmt.Errorf("registry: route %q duplicates %q", rt.ID(), prev)
		}
		if rt.TimeMinutes <= 0 || rt.DistanceMiles <= 0 {
			return nil, fmt.Errorf("registry: route %q: time and distance must be positive", rt.ID())
		}
		if err := checkLink(rt.Link); err != nil {
			return nil, fmt.Errorf("registry: route %q: %w", rt.ID(), err)
		}

		pairs[pair] = rt.ID()
		idx := len(r.routes)
		r.byID[rt.ID()] = idx
		r.routes = append(r.routes, rt)
		r.incident[rt.Start] = append(r.incident[rt.Start], idx)
		r.incident[rt.End] = append(r.incident[rt.End], idx)
	}

	return r, nil
}

// MustNew is like New but panics on invalid tables. Use it for compiled-in data only.
func MustNew(venues []models.Venue, routes []models.Route) *Registry {
	r, err := New(venues, routes)
	if err != nil {
		panic(err)
	}
	return r
}

func checkLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("link %q is not an absolute http(s) URL", link)
	}
	return nil
}

// Venues returns the venues in registration order.
func (r *Registry) Venues() []models.Venue {
	out := make([]models.Venue, len(r.venues))
	copy(out, r.venues)
	return out
}

// Venue looks up a venue by key.
func (r *Registry) Venue(key string) (models.Venue, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return models.Venue{}, false
	}
	return r.venues[i], true
}

// Routes returns the routes in table order.
func (r *Registry) Routes() []models.Route {
	out := make([]models.Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Route looks up a route by ID.
func (r *Registry) Route(id string) (models.Route, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.Route{}, false
	}
	return r.routes[i], true
}

// IncidentRoutes returns every route with key as an endpoint.
func (r *Registry) IncidentRoutes(key string) []models.Route {
	idx := r.incident[key]
	out := make([]models.Route, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.routes[i])
	}
	return out
}
