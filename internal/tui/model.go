package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wedding-map/internal/geolocation"
	"wedding-map/internal/mapview"
	"wedding-map/internal/models"
	"wedding-map/internal/navigation"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	footerHeight = 2
	sidebarWidth = 36
	linkText     = "↗ open route link (o)"
)

type navigationMsg struct {
	result navigation.Result
}

// Model is the bubbletea model of the interactive map. Every gesture is
// turned into exactly one session call inside Update.
type Model struct {
	ctx     context.Context
	session *mapview.Session
	canvas  *Canvas
	opener  navigation.Opener

	venues []models.Venue
	routes []models.Route

	width  int
	height int

	// focus indexes focusables(); -1 when nothing is focused.
	focus  int
	hover  string
	status string
	help   help.Model
}

// New creates the model. canvas must be the renderer the session was built with.
func New(ctx context.Context, session *mapview.Session, canvas *Canvas, opener navigation.Opener) Model {
	return Model{
		ctx:     ctx,
		session: session,
		canvas:  canvas,
		opener:  opener,
		venues:  session.Registry().Venues(),
		routes:  session.Registry().Routes(),
		focus:   -1,
		status:  "click a route for details, a venue for directions",
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) mapSize() (int, int) {
	return max(20, m.width-sidebarWidth-1), max(4, m.height-headerHeight-footerHeight)
}

type feature struct {
	venue string
	route string
}

func (f feature) key() string {
	if f.venue != "" {
		return f.venue
	}
	return f.route
}

// focusables lists what tab can reach: shown markers, then shown routes.
func (m Model) focusables() []feature {
	var out []feature
	for _, v := range m.venues {
		if m.session.Visibility().VenueShown(v.Key) {
			out = append(out, feature{venue: v.Key})
		}
	}
	for _, r := range m.routes {
		if m.session.Visibility().RouteShown(r.ID()) {
			out = append(out, feature{route: r.ID()})
		}
	}
	return out
}

func (m Model) focused() (feature, bool) {
	fs := m.focusables()
	if m.focus < 0 || m.focus >= len(fs) {
		return feature{}, false
	}
	return fs[m.focus], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvas.Resize(m.mapSize())
		return m, nil

	case navigationMsg:
		m.status = m.describe(msg.result)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Toggle):
		idx := int(msg.String()[0] - '1')
		if idx < len(m.venues) {
			m.toggle(idx)
		}

	case key.Matches(msg, keys.Next), key.Matches(msg, keys.Prev):
		n := len(m.focusables())
		if n == 0 {
			m.focus = -1
			break
		}
		if key.Matches(msg, keys.Next) {
			m.focus = (m.focus + 1) % n
		} else {
			m.focus = (m.focus - 1 + n) % n
		}

	case key.Matches(msg, keys.Activate):
		f, ok := m.focused()
		if !ok {
			break
		}
		if f.venue != "" {
			return m, m.navigate(f.venue)
		}
		m.session.ClickRoute(f.route)

	case key.Matches(msg, keys.Dismiss):
		m.session.ClickBackground()

	case key.Matches(msg, keys.OpenLink):
		m.openPopupLink()

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mapW, mapH := m.mapSize()
	x, y := msg.X, msg.Y-headerHeight
	inMap := x >= 0 && x < mapW && y >= 0 && y < mapH

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hover = ""
		if inMap {
			if t := m.canvas.HitTest(x, y); t.kind == targetRoute {
				m.hover = t.key
			}
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inMap {
			t := m.canvas.HitTest(x, y)
			switch t.kind {
			case targetMarker:
				return m, m.navigate(t.key)
			case targetRoute:
				m.session.ClickRoute(t.key)
			default:
				m.session.ClickBackground()
			}
			return m, nil
		}
		if x > mapW && y >= 0 {
			m.clickSidebar(y)
		}
	}
	return m, nil
}

func (m *Model) toggle(idx int) {
	v := m.venues[idx]
	visible := !m.session.Visibility().VenueShown(v.Key)
	m.session.ToggleVenue(v.Key, visible)

	state := "hidden"
	if visible {
		state = "shown"
	}
	m.status = fmt.Sprintf("%s %s", v.Label, state)
	if m.focus >= len(m.focusables()) {
		m.focus = -1
	}
}

func (m *Model) navigate(venueKey string) tea.Cmd {
	ch := m.session.ClickMarker(m.ctx, venueKey)
	if ch == nil {
		return nil
	}
	v, _ := m.session.Registry().Venue(venueKey)
	m.status = fmt.Sprintf("locating you for directions to %s…", v.Label)
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return navigationMsg{result: res}
	}
}

func (m *Model) openPopupLink() {
	panel, ok := m.canvas.Popup()
	if !ok || m.opener == nil {
		return
	}
	if err := m.opener.Open(panel.Link); err != nil {
		m.status = fmt.Sprintf("could not open browser: %s", panel.Link)
		return
	}
	m.status = "opened " + panel.Title
}

func (m *Model) clickSidebar(row int) {
	if idx := row - 1; idx >= 0 && idx < len(m.venues) {
		m.toggle(idx)
		return
	}
	if lines, linkRow := m.sidebarLines(); linkRow >= 0 && row == linkRow && row < len(lines) {
		m.openPopupLink()
	}
}

func (m Model) describe(res navigation.Result) string {
	if res.Superseded {
		return m.status
	}
	v, _ := m.session.Registry().Venue(res.Venue)
	if res.OpenErr != nil {
		return fmt.Sprintf("could not open browser, directions: %s", res.URL)
	}
	if !res.Fallback {
		return fmt.Sprintf("opened directions to %s", v.Label)
	}

	reason := "location unavailable"
	switch {
	case errors.Is(res.Cause, context.DeadlineExceeded):
		reason = "location timed out"
	case errors.Is(res.Cause, geolocation.ErrPermissionDenied):
		reason = "location denied"
	case errors.Is(res.Cause, navigation.ErrNoGeolocator):
		reason = "no location source"
	case geolocation.IsNoPosition(res.Cause):
		reason = "location unavailable"
	}
	return fmt.Sprintf("%s: opened address search for %s", reason, v.Label)
}

// sidebarLines renders the legend and popup, and reports which line holds
// the popup's link (-1 when no popup is shown).
func (m Model) sidebarLines() ([]string, int) {
	lines := []string{titleStyle.Render("Venues")}
	for i, v := range m.venues {
		box := "[ ]"
		if m.session.Visibility().VenueShown(v.Key) {
			box = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %d %s", box, i+1, v.Label))
	}
	lines = append(lines, "")

	panel, ok := m.canvas.Popup()
	if !ok {
		return lines, -1
	}
	content := strings.Join([]string{
		titleStyle.Render(panel.Title),
		panel.Time,
		panel.Distance,
		linkStyle.Render(linkText),
	}, "\n")
	boxed := strings.Split(popupStyle.Width(sidebarWidth-2).Render(content), "\n")

	linkRow := -1
	for i, l := range boxed {
		if strings.Contains(l, "open route link") {
			linkRow = len(lines) + i
		}
	}
	return append(lines, boxed...), linkRow
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	mapW, mapH := m.mapSize()

	header := titleStyle.Render(" wedding map ─ venues & routes ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	focusKey := ""
	if f, ok := m.focused(); ok {
		focusKey = f.key()
	}
	mapView := lipgloss.NewStyle().Width(mapW).Height(mapH).Render(m.canvas.Draw(m.hover, focusKey))

	lines, _ := m.sidebarLines()
	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(mapH).Render(strings.Join(lines, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", sidebar)
	status := dimStyle.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, m.help.View(keys))
}
