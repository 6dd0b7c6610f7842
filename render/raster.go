package render

import (
	"math"

	"github.com/lixenwraith/stick-fit/vmath"
)

// Line walks the cells from (x0, y0) to (x1, y1) inclusive (Bresenham)
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LineGlyph picks a box-drawing rune for a screen-space direction
// dy follows screen rows (down is positive)
func LineGlyph(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return '•'
	}
	deg := math.Mod(math.Atan2(-dy, dx)*180/math.Pi+180, 180)
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '╱'
	case deg < 112.5:
		return '│'
	default:
		return '╲'
	}
}

// DrawSegment rasterizes a world segment with a direction glyph
func DrawSegment(buf *RenderBuffer, vp Viewport, seg vmath.Segment, fg RGB) {
	x0, y0 := vp.ToCell(seg.Start)
	x1, y1 := vp.ToCell(seg.End)
	d := seg.Vector()
	glyph := LineGlyph(d.X()*vp.Scale, -d.Y()*vp.rowScale())
	Line(x0, y0, x1, y1, func(x, y int) {
		if vp.InPlayArea(x, y) {
			buf.SetFgOnly(x, y, glyph, fg, 0)
		}
	})
}

// ShadeSegment blends the background along a world segment
func ShadeSegment(buf *RenderBuffer, vp Viewport, seg vmath.Segment, bg RGB, alpha float64) {
	x0, y0 := vp.ToCell(seg.Start)
	x1, y1 := vp.ToCell(seg.End)
	Line(x0, y0, x1, y1, func(x, y int) {
		if vp.InPlayArea(x, y) {
			buf.SetBgOnly(x, y, bg, alpha)
		}
	})
}
