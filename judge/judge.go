package judge

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/stick-fit/vmath"
)

var (
	ErrNoTarget      = errors.New("judge: target source is required")
	ErrNoSink        = errors.New("judge: progress sink is required")
	ErrInvalidConfig = errors.New("judge: invalid config")
)

// FitProgress is the per-tick progress message for the reported stick
// Percentages are rounded 0..100; a Cleared message is sent exactly once per session
type FitProgress struct {
	Record     RecordID
	Ratio      float64
	MaxRatio   float64
	Percent    int
	MaxPercent int
	LengthOK   bool
	Cleared    bool
	Failed     bool
}

// Cleared is the one-shot clear notification
type Cleared struct {
	SessionID string
	Record    RecordID
	Frame     int64
	At        time.Time
	Pose      Pose // transform committed to the winning stick
}

// Sink receives judge output, called synchronously inside Tick
type Sink interface {
	Progress(p FitProgress)
	Cleared(c Cleared)
}

// State is the session-wide judgment flags
// Resolved never reverts; Snapped implies Resolved
type State struct {
	Resolved  bool
	Suspended bool
	Snapped   bool
}

// Deps are the collaborators injected at construction
type Deps struct {
	Target TargetSource
	Sink   Sink
	Now    func() time.Time                  // defaults to time.Now
	Logf   func(format string, args ...any) // defaults to log.Printf
}

// TickResult summarizes one judgment tick
type TickResult struct {
	Skipped   bool // resolved, suspended or no valid target
	Evaluated int
	Dropped   int
	Cleared   bool
}

// Judge is the judgment loop of one play session
// Single-threaded: Track, Tick, SetSuspended and Resolve must be called from the tick context
type Judge struct {
	cfg    Config
	tol    Tolerance
	target TargetSource
	sink   Sink
	now    func() time.Time
	logf   func(format string, args ...any)

	registry  *Registry
	sessionID string

	resolved  bool
	suspended bool
	snapped   bool

	clearTarget Target
}

// New validates the configuration and collaborators
// Configuration errors are fatal: judgment must not start
func New(cfg Config, deps Deps) (*Judge, error) {
	if deps.Target == nil {
		return nil, ErrNoTarget
	}
	if deps.Sink == nil {
		return nil, ErrNoSink
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	j := &Judge{
		cfg:       cfg,
		tol:       cfg.Tolerance(),
		target:    deps.Target,
		sink:      deps.Sink,
		now:       deps.Now,
		logf:      deps.Logf,
		registry:  NewRegistry(),
		sessionID: uuid.NewString(),
	}
	if j.now == nil {
		j.now = time.Now
	}
	if j.logf == nil {
		j.logf = log.Printf
	}
	return j, nil
}

// Track starts judging a released stick
// Rejected once the session is resolved
func (j *Judge) Track(c Candidate) (RecordID, bool) {
	if c == nil || j.resolved {
		return 0, false
	}
	id := j.registry.Add(c, j.now())
	return id, true
}

// Tick runs one fixed-step judgment pass
func (j *Judge) Tick(frame int64) TickResult {
	var res TickResult
	if j.resolved || j.suspended {
		res.Skipped = true
		return res
	}

	target, ok := j.target.CurrentTarget()
	if !ok {
		res.Skipped = true
		return res
	}

	threshold := j.cfg.ClearThreshold()

	// Newest first; removal while walking the snapshot is safe
	for _, id := range j.registry.ReverseIDs() {
		rec, ok := j.registry.Get(id)
		if !ok {
			continue
		}

		if rec.Candidate == nil || !rec.Candidate.Valid() {
			j.registry.Remove(id)
			res.Dropped++
			continue
		}

		seg := rec.Candidate.Segment()
		if seg.Midpoint()[1] < j.cfg.FailYThreshold {
			j.registry.Remove(id)
			res.Dropped++
			if j.cfg.Failure == FailureReport {
				j.sink.Progress(progressOf(rec, true))
			}
			continue
		}

		ev := Evaluate(seg, target, j.tol)
		j.registry.UpdateMax(id, ev.Ratio, ev.LengthOK)
		res.Evaluated++

		if j.cfg.Progress == ProgressLatest {
			if active, ok := j.registry.Active(); ok && active.ID == id {
				j.sink.Progress(progressOf(rec, false))
			}
		}

		if rec.LengthOK && rec.MaxRatio >= threshold {
			j.signalClear(rec, target, frame)
			res.Cleared = j.resolved
			return res
		}
	}

	if j.cfg.Progress == ProgressBest {
		if best, ok := j.registry.Best(); ok {
			j.sink.Progress(progressOf(best, false))
		}
	}
	return res
}

// signalClear resolves the session for the winning record and snaps it
func (j *Judge) signalClear(rec *Record, target Target, frame int64) {
	if j.resolved || j.suspended {
		return
	}
	j.resolved = true
	j.clearTarget = target

	if surf, ok := j.target.(SnapSurface); ok {
		surf.EnableSnapSurface()
	}

	j.sink.Progress(FitProgress{
		Record:     rec.ID,
		Ratio:      1,
		MaxRatio:   1,
		Percent:    100,
		MaxPercent: 100,
		LengthOK:   true,
		Cleared:    true,
	})

	pose := ResolvePose(rec.Candidate.Segment(), target, j.cfg.Snap)
	j.sink.Cleared(Cleared{
		SessionID: j.sessionID,
		Record:    rec.ID,
		Frame:     frame,
		At:        j.now(),
		Pose:      pose,
	})
	j.logf("judge %s: cleared by record %d at frame %d (max %.3f)", j.sessionID, rec.ID, frame, rec.MaxRatio)

	j.resolve(rec.Candidate)
	j.registry.Clear()
}

// Resolve snaps the winning stick onto the target captured at clear time
// Safe to call from several trigger paths: runs at most once per session and only after resolution
func (j *Judge) Resolve(c Candidate) (Pose, bool) {
	if !j.resolved {
		return Pose{}, false
	}
	return j.resolve(c)
}

func (j *Judge) resolve(c Candidate) (Pose, bool) {
	if j.snapped {
		return Pose{}, false
	}
	j.snapped = true

	defer func() {
		if surf, ok := j.target.(SnapSurface); ok {
			surf.DisableSnapSurface()
		}
	}()

	if c == nil || !c.Valid() {
		return Pose{}, false
	}

	pose := ResolvePose(c.Segment(), j.clearTarget, j.cfg.Snap)
	if s, ok := c.(Snappable); ok {
		s.Halt()
		s.SetPose(pose)
	}
	return pose, true
}

// SetSuspended gates judgment without touching tracked records
func (j *Judge) SetSuspended(suspended bool) { j.suspended = suspended }

func (j *Judge) Suspended() bool { return j.suspended }
func (j *Judge) Resolved() bool  { return j.resolved }
func (j *Judge) Snapped() bool   { return j.snapped }

// State returns the current session flags
func (j *Judge) State() State {
	return State{Resolved: j.resolved, Suspended: j.suspended, Snapped: j.snapped}
}

// SessionID identifies this judgment session in logs and events
func (j *Judge) SessionID() string { return j.sessionID }

// Config returns the tuning in use
func (j *Judge) Config() Config { return j.cfg }

// Tracked returns the number of sticks under judgment
func (j *Judge) Tracked() int { return j.registry.Len() }

// Records returns value copies of tracked records in insertion order
func (j *Judge) Records() []Record {
	out := make([]Record, 0, j.registry.Len())
	j.registry.ForEach(func(rec *Record) bool {
		out = append(out, *rec)
		return true
	})
	return out
}

// BestRatio returns the highest running best among tracked sticks
func (j *Judge) BestRatio() float64 {
	if best, ok := j.registry.Best(); ok {
		return best.MaxRatio
	}
	return 0
}

func progressOf(rec *Record, failed bool) FitProgress {
	return FitProgress{
		Record:     rec.ID,
		Ratio:      rec.Ratio,
		MaxRatio:   rec.MaxRatio,
		Percent:    vmath.ToPercent(rec.Ratio),
		MaxPercent: vmath.ToPercent(rec.MaxRatio),
		LengthOK:   rec.LengthOK,
		Failed:     failed,
	}
}
