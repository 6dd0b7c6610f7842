package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stick-fit/vmath"
)

func TestViewportMapping(t *testing.T) {
	vp := NewViewport(80, 26)

	x, y := vp.ToCell(vmath.V(0, 0))
	assert.Equal(t, 40, x)
	assert.Equal(t, 14, y)

	// Y is up in the world, down on screen
	x, y = vp.ToCell(vmath.V(1, 1))
	assert.Equal(t, 44, x)
	assert.Equal(t, 12, y)

	for _, c := range [][2]int{{0, 2}, {40, 14}, {79, 25}, {13, 7}} {
		gx, gy := vp.ToCell(vp.ToWorld(c[0], c[1]))
		assert.Equalf(t, c, [2]int{gx, gy}, "cell %v did not round trip", c)
	}

	assert.False(t, vp.InPlayArea(10, 1), "HUD rows are not play area")
	assert.True(t, vp.InPlayArea(10, 2))
	assert.False(t, vp.InPlayArea(80, 10))
}

func TestLine(t *testing.T) {
	var got [][2]int
	plot := func(x, y int) { got = append(got, [2]int{x, y}) }

	Line(0, 0, 3, 0, plot)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, got)

	got = nil
	Line(2, 2, 0, 0, plot)
	assert.Equal(t, [][2]int{{2, 2}, {1, 1}, {0, 0}}, got)

	got = nil
	Line(5, 5, 5, 5, plot)
	assert.Len(t, got, 1)
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{1, 0, '─'},
		{-1, 0, '─'},
		{0, 1, '│'},
		{1, -1, '╱'},
		{1, 1, '╲'},
		{0, 0, '•'},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, LineGlyph(tt.dx, tt.dy), "dx=%v dy=%v", tt.dx, tt.dy)
	}
}

func TestBlend(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, RGB{100, 50, 25}, Blend(a, b, 0.5))
}

func TestBufferClearAndBounds(t *testing.T) {
	buf := NewRenderBuffer(7, 3)
	buf.SetWithBg(6, 2, 'x', RgbText, RgbFail)
	buf.SetFgOnly(-1, 0, 'y', RgbText, 0)
	buf.SetFgOnly(7, 0, 'y', RgbText, 0)

	assert.Equal(t, 'x', buf.Get(6, 2).Rune)
	buf.Clear()
	assert.Equal(t, Cell{Fg: RgbText, Bg: RgbBackground}, buf.Get(6, 2))

	buf.Resize(2, 2)
	w, h := buf.Bounds()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 4, buf.Text(2, 0, "ab", RgbText, 0), "text advances past clipped cells")
}

type stampRenderer struct {
	r      rune
	hidden bool
}

func (s *stampRenderer) Render(_ RenderContext, buf *RenderBuffer) { buf.SetFgOnly(0, 0, s.r, RgbText, 0) }
func (s *stampRenderer) IsVisible() bool                           { return !s.hidden }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newScreen(t, 10, 4)
	o := NewRenderOrchestrator(screen)

	// Registered out of order, the overlay must land last
	o.Register(&stampRenderer{r: 'O'}, PriorityOverlay)
	o.Register(&stampRenderer{r: 'B'}, PriorityBackground)
	o.Register(&stampRenderer{r: 'H', hidden: true}, PriorityDebug)
	o.Register(&stampRenderer{r: 'E'}, PriorityEntities)

	o.RenderFrame(RenderContext{Viewport: NewViewport(10, 4)})

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'O', r)
	_, bg, _ := style.Decompose()
	assert.Equal(t, RgbBackground.Tcell(), bg)

	r, _, _, _ = screen.GetContent(5, 3)
	assert.Equal(t, ' ', r)
}

func TestDrawSegmentClipsToPlayArea(t *testing.T) {
	vp := NewViewport(20, 10)
	buf := NewRenderBuffer(20, 10)

	// Vertical line crossing the HUD and the bottom edge
	DrawSegment(buf, vp, vmath.NewSegment(0, -20, 0, 20), RgbStick)

	x, _ := vp.ToCell(vmath.V(0, 0))
	assert.Equal(t, rune(0), buf.Get(x, 0).Rune)
	assert.Equal(t, rune(0), buf.Get(x, 1).Rune)
	for y := vp.Top; y < vp.Height; y++ {
		assert.Equalf(t, '│', buf.Get(x, y).Rune, "row %d", y)
	}
}
