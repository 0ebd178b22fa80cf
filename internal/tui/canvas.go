package tui

import (
	"math"
	"strings"

	"wedding-map/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is the terminal rendering adapter. It keeps what is on screen
// (markers, line styles, the popup panel) and draws it on a character grid.
type Canvas struct {
	venues []models.Venue
	routes []models.Route

	markers map[string]bool
	styles  map[string]models.RouteStyle
	popup   *models.Panel

	width  int
	height int
}

// NewCanvas creates an empty canvas for the given features. Nothing is
// visible until the session syncs its state onto it.
func NewCanvas(venues []models.Venue, routes []models.Route) *Canvas {
	return &Canvas{
		venues:  venues,
		routes:  routes,
		markers: make(map[string]bool, len(venues)),
		styles:  make(map[string]models.RouteStyle, len(routes)),
	}
}

func (c *Canvas) ShowMarker(key string) { c.markers[key] = true }
func (c *Canvas) HideMarker(key string) { c.markers[key] = false }

func (c *Canvas) SetRouteStyle(id string, style models.RouteStyle) {
	c.styles[id] = style
}

func (c *Canvas) ShowPopup(panel models.Panel) { c.popup = &panel }
func (c *Canvas) HidePopup()                   { c.popup = nil }

// Resize recomputes the plotting area after the viewport changed size.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
}

// Popup returns the panel currently displayed.
func (c *Canvas) Popup() (models.Panel, bool) {
	if c.popup == nil {
		return models.Panel{}, false
	}
	return *c.popup, true
}

// MarkerShown reports whether key's marker is on the canvas.
func (c *Canvas) MarkerShown(key string) bool { return c.markers[key] }

// RouteStyle returns the current line style of a route.
func (c *Canvas) RouteStyle(id string) models.RouteStyle { return c.styles[id] }

type projection struct {
	minLat, maxLat float64
	minLng, maxLng float64
	left, top      int
	plotW, plotH   int
}

func (c *Canvas) projection() projection {
	p := projection{
		minLat: math.Inf(1), maxLat: math.Inf(-1),
		minLng: math.Inf(1), maxLng: math.Inf(-1),
		left: 1, top: 1,
	}
	longest := 0
	for _, v := range c.venues {
		p.minLat = math.Min(p.minLat, v.Coordinate.Latitude)
		p.maxLat = math.Max(p.maxLat, v.Coordinate.Latitude)
		p.minLng = math.Min(p.minLng, v.Coordinate.Longitude)
		p.maxLng = math.Max(p.maxLng, v.Coordinate.Longitude)
		longest = max(longest, lipgloss.Width(v.Label))
	}

	right := min(longest+3, c.width/2)
	p.plotW = max(2, c.width-p.left-right)
	p.plotH = max(2, c.height-2)
	return p
}

func (p projection) cell(coord models.Coordinate) (int, int) {
	fx, fy := 0.5, 0.5
	if span := p.maxLng - p.minLng; span > 0 {
		fx = (coord.Longitude - p.minLng) / span
	}
	if span := p.maxLat - p.minLat; span > 0 {
		fy = (p.maxLat - coord.Latitude) / span
	}
	x := p.left + int(math.Round(fx*float64(p.plotW-1)))
	y := p.top + int(math.Round(fy*float64(p.plotH-1)))
	return x, y
}

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellRoute
	cellRouteHover
	cellRouteFocus
	cellMarker
	cellMarkerFocus
	cellLabel
)

type cell struct {
	r    rune
	kind cellKind
}

var cellStyles = map[cellKind]lipgloss.Style{
	cellEmpty:       lipgloss.NewStyle(),
	cellRoute:       lipgloss.NewStyle().Foreground(routeColor),
	cellRouteHover:  lipgloss.NewStyle().Foreground(routeColor).Bold(true),
	cellRouteFocus:  lipgloss.NewStyle().Foreground(accentFg).Bold(true),
	cellMarker:      lipgloss.NewStyle().Foreground(markerColor).Bold(true),
	cellMarkerFocus: lipgloss.NewStyle().Foreground(accentFg).Bold(true),
	cellLabel:       lipgloss.NewStyle().Foreground(baseFg),
}

// Draw renders the map. hover and focus name the route or venue to emphasise.
func (c *Canvas) Draw(hover, focus string) string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}
	grid := make([][]cell, c.height)
	for y := range grid {
		grid[y] = make([]cell, c.width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	set := func(x, y int, r rune, k cellKind) {
		if y >= 0 && y < c.height && x >= 0 && x < c.width {
			grid[y][x] = cell{r: r, kind: k}
		}
	}

	p := c.projection()
	byKey := make(map[string]models.Venue, len(c.venues))
	for _, v := range c.venues {
		byKey[v.Key] = v
	}

	for _, r := range c.routes {
		if !c.styles[r.ID()].Interactive {
			continue
		}
		kind := cellRoute
		switch r.ID() {
		case focus:
			kind = cellRouteFocus
		case hover:
			kind = cellRouteHover
		}
		x0, y0 := p.cell(byKey[r.Start].Coordinate)
		x1, y1 := p.cell(byKey[r.End].Coordinate)
		glyph := lineGlyph(x1-x0, y1-y0)
		bresenham(x0, y0, x1, y1, func(x, y int) { set(x, y, glyph, kind) })
	}

	for _, v := range c.venues {
		if !c.markers[v.Key] {
			continue
		}
		x, y := p.cell(v.Coordinate)
		kind := cellMarker
		if v.Key == focus {
			kind = cellMarkerFocus
		}
		set(x, y, '●', kind)
		for i, r := range []rune(v.Label) {
			set(x+2+i, y, r, cellLabel)
		}
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x == len(row) || row[x].kind != row[start].kind {
				var run strings.Builder
				for _, cl := range row[start:x] {
					run.WriteRune(cl.r)
				}
				b.WriteString(cellStyles[row[start].kind].Render(run.String()))
				start = x
			}
		}
	}
	return b.String()
}

type targetKind uint8

const (
	targetBackground targetKind = iota
	targetMarker
	targetRoute
)

type target struct {
	kind targetKind
	key  string
}

// HitTest resolves a map cell to exactly one feature. Markers (and their
// labels) win over routes; routes that are not interactive never match.
func (c *Canvas) HitTest(x, y int) target {
	p := c.projection()
	byKey := make(map[string]models.Venue, len(c.venues))
	for _, v := range c.venues {
		byKey[v.Key] = v
	}

	for _, v := range c.venues {
		if !c.markers[v.Key] {
			continue
		}
		mx, my := p.cell(v.Coordinate)
		if y == my && x >= mx-1 && x <= mx+1+lipgloss.Width(v.Label) {
			return target{kind: targetMarker, key: v.Key}
		}
	}

	best, bestDist := "", 1.5
	for _, r := range c.routes {
		if !c.styles[r.ID()].Interactive {
			continue
		}
		x0, y0 := p.cell(byKey[r.Start].Coordinate)
		x1, y1 := p.cell(byKey[r.End].Coordinate)
		if d := segmentDistance(float64(x), float64(y), float64(x0), float64(y0), float64(x1), float64(y1)); d < bestDist {
			best, bestDist = r.ID(), d
		}
	}
	if best != "" {
		return target{kind: targetRoute, key: best}
	}
	return target{kind: targetBackground}
}

func lineGlyph(dx, dy int) rune {
	adx, ady := math.Abs(float64(dx)), math.Abs(float64(dy))
	switch {
	case ady*2 < adx*0.8:
		return '─'
	case ady > adx*1.5:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// segmentDistance is measured in column widths; rows count double since a
// terminal cell is about twice as tall as it is wide.
func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	py, y0, y1 = py*2, y0*2, y1*2
	vx, vy := x1-x0, y1-y0
	t := 0.0
	if l := vx*vx + vy*vy; l > 0 {
		t = math.Max(0, math.Min(1, ((px-x0)*vx+(py-y0)*vy)/l))
	}
	dx, dy := px-(x0+t*vx), py-(y0+t*vy)
	return math.Hypot(dx, dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
