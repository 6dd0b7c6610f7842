package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbBlack      = RGB{0, 0, 0}
	RgbText       = RGB{192, 202, 245}
	RgbDim        = RGB{86, 95, 137}
	RgbTarget     = RGB{61, 89, 161}
	RgbTargetEdge = RGB{122, 162, 247}
	RgbGuide      = RGB{224, 175, 104}
	RgbStick      = RGB{255, 158, 100}
	RgbPreview    = RGB{255, 230, 140}
	RgbSnapped    = RGB{158, 206, 106}
	RgbClear      = RGB{158, 206, 106}
	RgbFail       = RGB{247, 118, 142}
	RgbHUDBg      = RGB{36, 40, 59}
	RgbZone       = RGB{187, 154, 247}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Tcell converts to a true-color tcell.Color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
