package status

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Metric keys written by the game loop
const (
	KeyJudgeTicks     = "judge.ticks"
	KeyJudgeTracked   = "judge.tracked"
	KeyJudgeBestRatio = "judge.best_ratio"
	KeyJudgeClears    = "judge.clears"
	KeyPhysicsSticks  = "physics.sticks"
	KeyEngineTicks    = "engine.ticks"
	KeyEngineEvents   = "engine.events"
	KeyStageName      = "stage.name"
	KeyJudgeSession   = "judge.session"
	KeyJudgeSuspended = "judge.suspended"
)

// Registry is the central metrics facade
// Writers cache pointers during setup and store directly to atomics
type Registry struct {
	Bools   Gauges[atomic.Bool]
	Ints    Gauges[atomic.Int64]
	Floats  Gauges[AtomicFloat]
	Strings Gauges[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Snapshot formats every metric for the debug overlay and logs
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = fmt.Sprint(v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = fmt.Sprint(v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = fmt.Sprintf("%.3f", v.Get()) })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// Gauges holds one lazily allocated value per metric key
// The zero value is ready; it must not be copied after first use
type Gauges[T any] struct {
	values sync.Map // string -> *T
	n      atomic.Int32
}

// Get returns the value for key, allocating it on first use
func (g *Gauges[T]) Get(key string) *T {
	if v, ok := g.values.Load(key); ok {
		return v.(*T)
	}
	v, loaded := g.values.LoadOrStore(key, new(T))
	if !loaded {
		g.n.Add(1)
	}
	return v.(*T)
}

func (g *Gauges[T]) Has(key string) bool {
	_, ok := g.values.Load(key)
	return ok
}

func (g *Gauges[T]) Len() int { return int(g.n.Load()) }

// Range visits keys in sorted order so overlay lines stay put between frames
func (g *Gauges[T]) Range(fn func(key string, v *T)) {
	var keys []string
	g.values.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := g.values.Load(k)
		fn(k, v.(*T))
	}
}
