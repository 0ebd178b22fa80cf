package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"wedding-map/internal/geolocation"
	"wedding-map/internal/mapview"
	"wedding-map/internal/models"
	"wedding-map/internal/navigation"
	"wedding-map/internal/registry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	mu   sync.Mutex
	urls []string
}

func (o *recordingOpener) Open(url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	return nil
}

func (o *recordingOpener) opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.urls...)
}

func newTestModel(t *testing.T, geo navigation.Geolocator) (Model, *Canvas, *recordingOpener) {
	t.Helper()
	reg := registry.Wedding()
	canvas := NewCanvas(reg.Venues(), reg.Routes())
	opener := &recordingOpener{}
	launcher := navigation.NewLauncher(navigation.NewResolver(geo, time.Second), opener, zerolog.Nop())

	session, err := mapview.NewSession(reg, canvas, launcher, nil, zerolog.Nop())
	require.NoError(t, err)

	var m tea.Model = New(context.Background(), session, canvas, opener)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(Model), canvas, opener
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(m Model, x, y int) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.MouseMsg{X: x, Y: y + headerHeight, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return next.(Model), cmd
}

func midpoint(c *Canvas, routeID string) (int, int) {
	reg := registry.Wedding()
	r, _ := reg.Route(routeID)
	a, _ := reg.Venue(r.Start)
	b, _ := reg.Venue(r.End)
	p := c.projection()
	return p.cell(models.Coordinate{
		Latitude:  (a.Coordinate.Latitude + b.Coordinate.Latitude) / 2,
		Longitude: (a.Coordinate.Longitude + b.Coordinate.Longitude) / 2,
	})
}

func TestModel_ToggleKeys(t *testing.T) {
	m, canvas, _ := newTestModel(t, nil)

	m, _ = press(m, runes("1"))

	assert.False(t, canvas.MarkerShown("annarbor"))
	assert.Equal(t, models.HiddenRouteStyle, canvas.RouteStyle("annarbor-dtw"))
	assert.Equal(t, models.ShownRouteStyle, canvas.RouteStyle("plymouth-dtw"))
	assert.Equal(t, "Ann Arbor hidden", m.status)

	m, _ = press(m, runes("1"))
	assert.True(t, canvas.MarkerShown("annarbor"))
	assert.Equal(t, models.ShownRouteStyle, canvas.RouteStyle("annarbor-dtw"))

	// no fifth venue
	m, _ = press(m, runes("5"))
	assert.Equal(t, "Ann Arbor shown", m.status)
}

func TestModel_ClickRouteShowsAndHiddenRouteFallsThrough(t *testing.T) {
	m, canvas, _ := newTestModel(t, nil)
	x, y := midpoint(canvas, "newport-dtw")
	require.Equal(t, target{kind: targetRoute, key: "newport-dtw"}, canvas.HitTest(x, y))

	m, _ = click(m, x, y)
	panel, ok := canvas.Popup()
	require.True(t, ok)
	assert.Equal(t, "Newport Venue (Wedding) ↔ DTW Airport", panel.Title)

	m, _ = press(m, runes("3"))
	_, ok = canvas.Popup()
	assert.False(t, ok, "toggling a venue dismisses the popup")
	assert.Equal(t, targetBackground, canvas.HitTest(x, y).kind)

	m.session.ClickRoute("plymouth-dtw")
	_, ok = canvas.Popup()
	require.True(t, ok)

	m, _ = click(m, x, y)
	_, ok = canvas.Popup()
	assert.False(t, ok, "a hidden route's cells belong to the background")
}

func TestModel_ClickMarkerNavigates(t *testing.T) {
	m, canvas, opener := newTestModel(t, geolocation.NewStatic(42.0, -83.0))
	dtw, _ := registry.Wedding().Venue("dtw")
	x, y := canvas.projection().cell(dtw.Coordinate)

	m, cmd := click(m, x, y)
	require.NotNil(t, cmd)
	assert.Contains(t, m.status, "DTW Airport")

	msg := cmd()
	m, _ = send(m, msg)

	assert.Equal(t, []string{navigation.DirectionsURL(models.Coordinate{Latitude: 42.0, Longitude: -83.0}, dtw.Address)}, opener.opened())
	assert.Equal(t, "opened directions to DTW Airport", m.status)
}

func TestModel_ClickMarkerWithoutPositionSearches(t *testing.T) {
	m, canvas, opener := newTestModel(t, geolocation.Denied{})
	newport, _ := registry.Wedding().Venue("newport")
	x, y := canvas.projection().cell(newport.Coordinate)

	m, cmd := click(m, x, y)
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, []string{navigation.SearchURL(newport.Address)}, opener.opened())
	assert.Equal(t, "location denied: opened address search for Newport Venue (Wedding)", m.status)
}

func TestModel_KeyboardFocus(t *testing.T) {
	m, canvas, opener := newTestModel(t, nil)

	// four markers, then the first route
	for i := 0; i < 5; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	panel, ok := canvas.Popup()
	require.True(t, ok)
	assert.Equal(t, "Ann Arbor ↔ The Meeting House (Reception)", panel.Title)

	m, _ = press(m, runes("o"))
	assert.Equal(t, []string{panel.Link}, opener.opened())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEscape})
	_, ok = canvas.Popup()
	assert.False(t, ok)
}

func TestModel_SidebarTogglesVenue(t *testing.T) {
	m, canvas, _ := newTestModel(t, nil)
	mapW, _ := m.mapSize()

	m, _ = click(m, mapW+3, 4)

	assert.False(t, canvas.MarkerShown("dtw"))
	lines, linkRow := m.sidebarLines()
	assert.Contains(t, lines[4], "[ ] 4 DTW Airport")
	assert.Equal(t, -1, linkRow)
}

func TestModel_ViewRenders(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	view := m.View()

	assert.Contains(t, view, "wedding map")
	assert.Contains(t, view, "DTW Airport")
	assert.Contains(t, view, "[x] 1 Ann Arbor")
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}
