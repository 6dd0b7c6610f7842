package judge

import (
	"time"

	"github.com/lixenwraith/stick-fit/vmath"
)

type fakeStick struct {
	seg    vmath.Segment
	valid  bool
	halted int
	poses  []Pose
}

func newFakeStick(x0, y0, x1, y1 float64) *fakeStick {
	return &fakeStick{seg: vmath.NewSegment(x0, y0, x1, y1), valid: true}
}

func (s *fakeStick) Segment() vmath.Segment { return s.seg }
func (s *fakeStick) Valid() bool            { return s.valid }
func (s *fakeStick) Halt()                  { s.halted++ }
func (s *fakeStick) SetPose(p Pose) {
	s.poses = append(s.poses, p)
	s.seg = p.Segment()
}

// readOnlyStick cannot be snapped
type readOnlyStick struct{ seg vmath.Segment }

func (s readOnlyStick) Segment() vmath.Segment { return s.seg }
func (s readOnlyStick) Valid() bool            { return true }

type recordingSink struct {
	progress []FitProgress
	cleared  []Cleared
	onClear  func(Cleared)
}

func (s *recordingSink) Progress(p FitProgress) { s.progress = append(s.progress, p) }
func (s *recordingSink) Cleared(c Cleared) {
	s.cleared = append(s.cleared, c)
	if s.onClear != nil {
		s.onClear(c)
	}
}

func (s *recordingSink) last() (FitProgress, bool) {
	if len(s.progress) == 0 {
		return FitProgress{}, false
	}
	return s.progress[len(s.progress)-1], true
}

// surfaceTarget records snap surface transitions
type surfaceTarget struct {
	*StaticTarget
	transitions []bool
}

func (s *surfaceTarget) EnableSnapSurface() {
	s.StaticTarget.EnableSnapSurface()
	s.transitions = append(s.transitions, true)
}

func (s *surfaceTarget) DisableSnapSurface() {
	s.StaticTarget.DisableSnapSurface()
	s.transitions = append(s.transitions, false)
}

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func quietLogf(string, ...any) {}
