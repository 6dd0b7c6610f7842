package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stick-fit/core"
	"github.com/lixenwraith/stick-fit/parameter"
	"github.com/lixenwraith/stick-fit/status"
)

// Ticker is driven by the scheduler with the fixed tick interval
type Ticker interface {
	Tick(dt time.Duration)
}

// Scheduler runs game logic on a fixed tick against a pausable clock
// Deadlines advance by the interval to avoid drift; falling too far behind resyncs
type Scheduler struct {
	target   Ticker
	clock    *PausableClock
	interval time.Duration

	ticks     atomic.Uint64
	statTicks *atomic.Int64

	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	running    atomic.Bool
	updateDone chan struct{}
}

// NewScheduler creates a stopped scheduler; reg may be nil
func NewScheduler(target Ticker, clock *PausableClock, interval time.Duration, reg *status.Registry) *Scheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if interval <= 0 {
		interval = parameter.GameUpdateInterval
	}
	return &Scheduler{
		target:     target,
		clock:      clock,
		interval:   interval,
		statTicks:  reg.Ints.Get(status.KeyEngineTicks),
		stopChan:   make(chan struct{}),
		updateDone: make(chan struct{}, 1),
	}
}

// Start begins the loop; it ends on Stop or when ctx is cancelled
func (s *Scheduler) Start(ctx context.Context) {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(func() { s.loop(ctx) })
	}
}

// Stop halts the loop and waits for the running tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.Load() {
			s.wg.Wait()
		}
	})
}

// UpdateDone signals after each tick, non-blocking, for the render loop
func (s *Scheduler) UpdateDone() <-chan struct{} { return s.updateDone }

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

func (s *Scheduler) Pause()         { s.clock.Pause() }
func (s *Scheduler) Resume()        { s.clock.Resume() }
func (s *Scheduler) IsPaused() bool { return s.clock.IsPaused() }

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()
	defer s.running.Store(false)

	next := s.clock.Now().Add(s.interval)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		var sleep time.Duration
		if s.clock.IsPaused() {
			// Slow poll while paused
			sleep = s.interval * 2
			next = s.clock.Now().Add(s.interval)
		} else {
			now := s.clock.Now()
			if !now.Before(next) {
				s.target.Tick(s.interval)
				n := s.ticks.Add(1)
				s.statTicks.Store(int64(n))

				next = next.Add(s.interval)
				if now.Sub(next) > s.interval*parameter.MaxTickCatchUp {
					next = now.Add(s.interval)
				}

				select {
				case s.updateDone <- struct{}{}:
				default:
				}
			}
			sleep = max(next.Sub(s.clock.Now()), 0)
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}
