package render

import (
	"math"

	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/vmath"
)

// Viewport maps the Y-up world onto terminal cells below the HUD rows
// Center is the world point shown in the middle of the play area
type Viewport struct {
	Width, Height int
	Top           int     // rows reserved for the HUD
	Scale         float64 // columns per world unit
	Aspect        float64 // cell height over width
	Center        vmath.Vec2
}

// NewViewport creates a viewport for a screen of width x height cells
func NewViewport(width, height int) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		Top:    parameter.HUDRows,
		Scale:  parameter.WorldCellScale,
		Aspect: parameter.CellAspect,
	}
}

func (v Viewport) rowScale() float64 { return v.Scale / v.Aspect }

func (v Viewport) originX() float64 { return float64(v.Width) / 2 }
func (v Viewport) originY() float64 { return float64(v.Top) + float64(v.Height-v.Top)/2 }

// ToCell returns the cell containing world point p
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x := v.originX() + (p.X()-v.Center.X())*v.Scale
	y := v.originY() - (p.Y()-v.Center.Y())*v.rowScale()
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld returns the world point at the centre of cell x, y
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	wx := (float64(x)+0.5-v.originX())/v.Scale + v.Center.X()
	wy := (v.originY()-float64(y)-0.5)/v.rowScale() + v.Center.Y()
	return vmath.V(wx, wy)
}

// InPlayArea reports whether the cell lies below the HUD and on screen
func (v Viewport) InPlayArea(x, y int) bool {
	return x >= 0 && x < v.Width && y >= v.Top && y < v.Height
}

// CellLength converts a world length along X into columns
func (v Viewport) CellLength(worldLen float64) float64 { return worldLen * v.Scale }
