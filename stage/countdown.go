package stage

import (
	"math"
	"time"
)

// Countdown gates input at stage start (3-2-1)
type Countdown struct {
	remaining time.Duration
	done      bool
}

// NewCountdown returns a finished countdown when d <= 0
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{remaining: d, done: d <= 0}
}

// Advance reports true exactly once, on the tick the countdown ends
func (c *Countdown) Advance(dt time.Duration) bool {
	if c.done {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.done = true
		return true
	}
	return false
}

func (c *Countdown) Done() bool { return c.done }

// Seconds returns the whole seconds left for display, rounded up
func (c *Countdown) Seconds() int {
	return int(math.Ceil(c.remaining.Seconds()))
}
