package geolocation

import (
	"context"
	"errors"

	"wedding-map/internal/models"
	"wedding-map/internal/navigation"
)

var (
	// ErrPositionUnavailable means no position could be determined.
	ErrPositionUnavailable = errors.New("geolocation: position unavailable")
	// ErrPermissionDenied means the visitor declined to share a position.
	ErrPermissionDenied = errors.New("geolocation: permission denied")
)

// Static always reports the same configured origin.
type Static struct {
	position models.Position
}

// NewStatic creates a fixed-position source.
func NewStatic(lat, lng float64) *Static {
	return &Static{position: models.Position{Coordinate: models.Coordinate{Latitude: lat, Longitude: lng}}}
}

// CurrentPosition implements navigation.Geolocator.
func (s *Static) CurrentPosition(ctx context.Context, _ navigation.PositionOptions) (models.Position, error) {
	if err := ctx.Err(); err != nil {
		return models.Position{}, err
	}
	return s.position, nil
}

// Denied models a visitor who refused location access.
type Denied struct{}

// CurrentPosition implements navigation.Geolocator.
func (Denied) CurrentPosition(context.Context, navigation.PositionOptions) (models.Position, error) {
	return models.Position{}, ErrPermissionDenied
}
