package game

import (
	"sync"
	"time"
)

// PausableClock provides game time that stops while paused
type PausableClock struct {
	mu  sync.RWMutex
	now func() time.Time

	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a running clock; now defaults to time.Now
func NewPausableClock(now func() time.Time) *PausableClock {
	if now == nil {
		now = time.Now
	}
	return &PausableClock{now: now, start: now()}
}

// Now returns current game time, frozen at the pause point while paused
func (c *PausableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paused {
		return c.start.Add(c.pauseStart.Sub(c.start) - c.totalPaused)
	}
	return c.start.Add(c.now().Sub(c.start) - c.totalPaused)
}

// Pause stops game time advancement
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.now()
}

// Resume continues game time, the paused span is excluded from Now
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.totalPaused += c.now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

func (c *PausableClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// TotalPaused returns cumulative pause time including the current pause
func (c *PausableClock) TotalPaused() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := c.totalPaused
	if c.paused {
		total += c.now().Sub(c.pauseStart)
	}
	return total
}
