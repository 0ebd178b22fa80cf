package service

import (
	"context"
	"fmt"
	"time"

	"wedding-map/internal/navigation"
	"wedding-map/internal/registry"

	"github.com/rs/zerolog"
)

// ClientLocator binds a position source to the address of the requesting client.
type ClientLocator interface {
	For(ip string) navigation.Geolocator
}

// DirectionsService resolves the outbound directions link for a venue on behalf of an HTTP client.
type DirectionsService struct {
	reg     *registry.Registry
	locator ClientLocator
	timeout time.Duration
	logger  zerolog.Logger
}

// NewDirectionsService creates a new directions service. A nil locator always
// yields the address search link.
func NewDirectionsService(reg *registry.Registry, locator ClientLocator, timeout time.Duration, logger zerolog.Logger) *DirectionsService {
	return &DirectionsService{reg: reg, locator: locator, timeout: timeout, logger: logger}
}

// Directions returns the directions link from the client's estimated position to the venue
func (s *DirectionsService) Directions(ctx context.Context, key, clientIP string) (*navigation.Result, error) {
	venue, ok := s.reg.Venue(key)
	if !ok {
		return nil, fmt.Errorf("service: %w %q", registry.ErrUnknownVenue, key)
	}

	var geo navigation.Geolocator
	if s.locator != nil {
		geo = s.locator.For(clientIP)
	}

	res := navigation.NewResolver(geo, s.timeout).Resolve(ctx, venue)
	if res.Fallback {
		s.logger.Debug().Err(res.Cause).Str("venue", key).Str("client_ip", clientIP).Msg("directions fell back to address search")
	}
	return &res, nil
}
