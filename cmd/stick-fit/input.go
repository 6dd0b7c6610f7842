package main

import "github.com/lixenwraith/stick-fit/vmath"

// stroker receives pointer input in world coordinates, satisfied by *game.Game
type stroker interface {
	Press(p vmath.Vec2) bool
	Aim(p vmath.Vec2)
	Release() bool
}

// strokeInput turns button-1 samples into stroke calls
// A stroke only begins on the press edge; a rejected press waits for the next one
type strokeInput struct {
	down    bool // button held
	drawing bool // press accepted, stroke in progress
}

func (in *strokeInput) Handle(s stroker, p vmath.Vec2, down bool) {
	pressed := down && !in.down
	in.down = down
	switch {
	case pressed:
		in.drawing = s.Press(p)
	case down && in.drawing:
		s.Aim(p)
	case !down && in.drawing:
		s.Aim(p)
		s.Release()
		in.drawing = false
	}
}
