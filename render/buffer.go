package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// RenderBuffer is a compositor over a cell array with touched tracking
// Untouched cells get the default background on flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: RgbText, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *RenderBuffer) Bounds() (int, int) { return b.width, b.height }

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune and foreground, keeping the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly blends the background toward bg by alpha, keeping rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = Blend(b.cells[idx].Bg, bg, alpha)
	b.touched[idx] = true
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// Text writes s left to right from x, clipped to the buffer; returns the column after the text
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg, attrs)
		x++
	}
	return x
}

// FillRow paints the background of a whole row
func (b *RenderBuffer) FillRow(y int, bg RGB) {
	for x := range b.width {
		b.SetBgOnly(x, y, bg, 1)
	}
}

// FlushToScreen writes every cell to the screen; Show is left to the caller
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := range b.height {
		for x := range b.width {
			idx := y*b.width + x
			c := b.cells[idx]
			bg := c.Bg
			if !b.touched[idx] {
				bg = RgbBackground
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(bg.Tcell()).Attributes(c.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
