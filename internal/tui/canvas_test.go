package tui

import (
	"testing"

	"wedding-map/internal/models"
	"wedding-map/internal/registry"

	"github.com/stretchr/testify/assert"
)

func TestBresenham(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expectedCells  int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical", 2, 7, 2, 3, 5},
		{"diagonal", 0, 0, 3, 3, 4},
		{"single cell", 4, 4, 4, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cells [][2]int
			bresenham(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) { cells = append(cells, [2]int{x, y}) })

			assert.Len(t, cells, tt.expectedCells)
			assert.Equal(t, [2]int{tt.x0, tt.y0}, cells[0])
			assert.Equal(t, [2]int{tt.x1, tt.y1}, cells[len(cells)-1])
		})
	}
}

func TestLineGlyph(t *testing.T) {
	assert.Equal(t, '─', lineGlyph(10, 1))
	assert.Equal(t, '│', lineGlyph(1, 10))
	assert.Equal(t, '╲', lineGlyph(4, 3))
	assert.Equal(t, '╱', lineGlyph(-4, 3))
}

func TestCanvas_HitTestSkipsHiddenFeatures(t *testing.T) {
	reg := registry.Wedding()
	c := NewCanvas(reg.Venues(), reg.Routes())
	c.Resize(63, 27)
	for _, v := range reg.Venues() {
		c.ShowMarker(v.Key)
	}
	for _, r := range reg.Routes() {
		c.SetRouteStyle(r.ID(), models.ShownRouteStyle)
	}

	dtw, _ := reg.Venue("dtw")
	x, y := c.projection().cell(dtw.Coordinate)
	assert.Equal(t, target{kind: targetMarker, key: "dtw"}, c.HitTest(x, y))

	c.HideMarker("dtw")
	for _, r := range reg.IncidentRoutes("dtw") {
		c.SetRouteStyle(r.ID(), models.HiddenRouteStyle)
	}
	assert.NotEqual(t, targetMarker, c.HitTest(x, y).kind)
	if hit := c.HitTest(x, y); hit.kind == targetRoute {
		r, _ := reg.Route(hit.key)
		assert.False(t, r.Touches("dtw"))
	}
	assert.Equal(t, target{kind: targetBackground}, c.HitTest(0, 26))
}
