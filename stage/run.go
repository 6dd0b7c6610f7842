package stage

import (
	"math/rand/v2"
	"slices"
	"time"
)

// Run sequences stages; with a time limit and shuffle it is a score attack run
// The order is reshuffled each time it wraps
type Run struct {
	order    []int
	pos      int
	shuffle  bool
	rng      *rand.Rand
	limit    time.Duration
	elapsed  time.Duration
	cleared  int
	timerOn  bool
	finished bool
}

// NewRun creates a run over count stages beginning at first; limit 0 means untimed
func NewRun(count, first int, limit time.Duration, shuffle bool, rng *rand.Rand) *Run {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	r := &Run{
		order:   make([]int, count),
		shuffle: shuffle,
		rng:     rng,
		limit:   limit,
	}
	r.build()
	if !shuffle && count > 0 {
		r.pos = min(max(first, 0), count-1)
	}
	return r
}

func (r *Run) build() {
	for i := range r.order {
		r.order[i] = i
	}
	if r.shuffle {
		r.rng.Shuffle(len(r.order), func(i, j int) {
			r.order[i], r.order[j] = r.order[j], r.order[i]
		})
	}
}

// Current returns the stage index to play
func (r *Run) Current() int {
	if len(r.order) == 0 {
		return -1
	}
	return r.order[r.pos]
}

// Order returns the current stage order
func (r *Run) Order() []int { return slices.Clone(r.order) }

// StartTimer begins the time limit, called when the first countdown ends
func (r *Run) StartTimer() { r.timerOn = true }

// Timed reports whether the run has a time limit
func (r *Run) Timed() bool { return r.limit > 0 }

// Advance counts down the time limit; returns true on the tick the run ends
func (r *Run) Advance(dt time.Duration) bool {
	if !r.Timed() || !r.timerOn || r.finished {
		return false
	}
	r.elapsed += dt
	if r.elapsed >= r.limit {
		r.elapsed = r.limit
		r.finished = true
		return true
	}
	return false
}

// StageCleared counts a clear and moves to the next stage; ignored after the run ended
func (r *Run) StageCleared() int {
	if r.finished {
		return r.Current()
	}
	r.cleared++
	return r.next()
}

func (r *Run) next() int {
	if len(r.order) == 0 {
		return -1
	}
	r.pos++
	if r.pos >= len(r.order) {
		r.build()
		r.pos = 0
	}
	return r.Current()
}

func (r *Run) Finished() bool         { return r.finished }
func (r *Run) Cleared() int           { return r.cleared }
func (r *Run) Elapsed() time.Duration { return r.elapsed }

// Remaining returns the time left, zero when untimed
func (r *Run) Remaining() time.Duration {
	if !r.Timed() {
		return 0
	}
	return r.limit - r.elapsed
}
