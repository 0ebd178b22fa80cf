package navigation

import (
	"context"
	"errors"
	"time"

	"wedding-map/internal/models"
)

// DefaultTimeout bounds how long a position request may take.
const DefaultTimeout = 10 * time.Second

// ErrNoGeolocator means the runtime has no positioning capability at all.
var ErrNoGeolocator = errors.New("navigation: positioning unavailable")

// PositionOptions mirrors what a caller may ask of a position source.
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
}

// Geolocator obtains the visitor's current position.
type Geolocator interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (models.Position, error)
}

// Result describes the outcome of one navigation request.
type Result struct {
	Seq      uint64
	Venue    string
	URL      string
	Fallback bool
	// Cause is the positioning error that forced the fallback, if any.
	Cause error
	// Superseded is set when a newer request was issued before this one completed.
	Superseded bool
	// OpenErr is set when the opener failed to launch the URL.
	OpenErr error
}

// Resolver turns a venue into an outbound URL, using the current position when it can get one.
type Resolver struct {
	geo     Geolocator
	timeout time.Duration
}

// NewResolver creates a resolver. A nil geolocator always falls back to search.
func NewResolver(geo Geolocator, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{geo: geo, timeout: timeout}
}

type fix struct {
	pos models.Position
	err error
}

// Resolve waits at most the configured timeout for a position, then builds the directions URL,
// or the search URL on any failure.
func (r *Resolver) Resolve(ctx context.Context, venue models.Venue) Result {
	res := Result{Venue: venue.Key}

	pos, err := r.position(ctx)
	if err != nil {
		res.URL = SearchURL(venue.Address)
		res.Fallback = true
		res.Cause = err
		return res
	}

	res.URL = DirectionsURL(pos.Coordinate, venue.Address)
	return res
}

func (r *Resolver) position(ctx context.Context) (models.Position, error) {
	if r.geo == nil {
		return models.Position{}, ErrNoGeolocator
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan fix, 1)
	go func() {
		pos, err := r.geo.CurrentPosition(ctx, PositionOptions{HighAccuracy: true, Timeout: r.timeout})
		done <- fix{pos: pos, err: err}
	}()

	select {
	case f := <-done:
		if f.err == nil && !f.pos.Coordinate.Valid() {
			return models.Position{}, errors.New("navigation: position out of range")
		}
		return f.pos, f.err
	case <-ctx.Done():
		return models.Position{}, ctx.Err()
	}
}
