package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stick-fit/parameter"
)

// Engine plays sound effects through the system speaker
// All effects are mixed into a single beep.Mixer
type Engine struct {
	cfg   Config
	mixer *beep.Mixer

	mu          sync.Mutex
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewEngine creates an engine; call Start before Play has any effect
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start initializes the speaker and attaches the mixer
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	rate := beep.SampleRate(e.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play queues an effect, returns false when nothing was queued
func (e *Engine) Play(s Sound) bool {
	if e.muted.Load() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return false
	}

	st := Effect(s, e.cfg)
	if st == nil {
		return false
	}
	speaker.Lock()
	e.mixer.Add(st)
	speaker.Unlock()
	e.played.Add(1)
	return true
}

func (e *Engine) SetMuted(muted bool) { e.muted.Store(muted) }
func (e *Engine) Muted() bool         { return e.muted.Load() }

// Played returns the number of effects queued so far
func (e *Engine) Played() int64 { return e.played.Load() }

// Close clears the mixer and releases the speaker
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}

// Null discards every sound, used when the speaker cannot be opened
type Null struct {
	muted atomic.Bool
	count atomic.Int64
}

// Play records the request and reports false
func (n *Null) Play(Sound) bool {
	n.count.Add(1)
	return false
}

func (n *Null) SetMuted(muted bool) { n.muted.Store(muted) }
func (n *Null) Muted() bool         { return n.muted.Load() }
func (n *Null) Close()              {}

// Requests returns how many sounds were requested
func (n *Null) Requests() int64 { return n.count.Load() }

var (
	_ Player = (*Engine)(nil)
	_ Player = (*Null)(nil)
)
