package render

import (
	"github.com/lixenwraith/stick-fit/game"
)

// RenderContext is the per-frame state handed to renderers, passed by value
type RenderContext struct {
	View     game.View
	Viewport Viewport
	Metrics  map[string]string // nil unless the debug overlay is on
	Muted    bool
	Paused   bool
}
