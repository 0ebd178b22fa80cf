package mapview

import (
	"context"

	"wedding-map/internal/models"
	"wedding-map/internal/navigation"
	"wedding-map/internal/registry"

	"github.com/rs/zerolog"
)

// Navigator opens external directions for a venue.
type Navigator interface {
	NavigateTo(ctx context.Context, venue models.Venue) <-chan navigation.Result
}

// Session is the state of one open map: the tables, venue visibility, the
// popup, and the navigator. Every gesture goes through it, one at a time.
type Session struct {
	reg        *registry.Registry
	state      *VisibilityState
	visibility *VisibilityController
	popup      *PopupPresenter
	navigator  Navigator
	logger     zerolog.Logger
}

// NewSession builds a session with the venues in hidden initially hidden and
// brings the renderer in line with that state.
func NewSession(reg *registry.Registry, renderer Renderer, navigator Navigator, hidden []string, logger zerolog.Logger) (*Session, error) {
	state, err := NewVisibilityState(reg, hidden)
	if err != nil {
		return nil, err
	}
	popup := NewPopupPresenter(reg, state, renderer)
	s := &Session{
		reg:        reg,
		state:      state,
		visibility: NewVisibilityController(reg, state, renderer, popup),
		popup:      popup,
		navigator:  navigator,
		logger:     logger,
	}

	s.visibility.Sync()
	s.popup.Dismiss()
	return s, nil
}

// Registry returns the session's tables.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Visibility returns the session's visibility controller.
func (s *Session) Visibility() *VisibilityController { return s.visibility }

// Popup returns the session's popup presenter.
func (s *Session) Popup() *PopupPresenter { return s.popup }

// ToggleVenue handles a venue control change.
func (s *Session) ToggleVenue(key string, visible bool) {
	if err := s.visibility.SetVenueVisible(key, visible); err != nil {
		s.logger.Error().Err(err).Msg("toggle for unregistered venue")
	}
}

// ClickRoute handles a click on a route line. Hidden routes do not take
// input, so the click lands on the background instead.
func (s *Session) ClickRoute(id string) {
	shown, err := s.popup.ActivateRoute(id)
	if err != nil {
		s.logger.Error().Err(err).Msg("click on unregistered route")
		return
	}
	if !shown {
		s.ClickBackground()
	}
}

// ClickMarker starts navigation to a venue. A hidden venue has no marker on
// the canvas, so the click lands on the background and nil is returned.
func (s *Session) ClickMarker(ctx context.Context, key string) <-chan navigation.Result {
	venue, ok := s.reg.Venue(key)
	if !ok {
		s.logger.Error().Str("venue", key).Msg("click on unregistered marker")
		return nil
	}
	if !s.state.VenueShown(key) {
		s.ClickBackground()
		return nil
	}
	if s.navigator == nil {
		return nil
	}
	return s.navigator.NavigateTo(ctx, venue)
}

// ClickBackground handles a click on empty map.
func (s *Session) ClickBackground() {
	s.popup.Dismiss()
}
