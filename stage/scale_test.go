package stage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stick-fit/vmath"
)

type scaledStick struct {
	id        uint64
	seg       vmath.Segment
	simulated bool
	calls     []float64
}

func (s *scaledStick) ID() uint64             { return s.id }
func (s *scaledStick) Segment() vmath.Segment { return s.seg }
func (s *scaledStick) Simulated() bool        { return s.simulated }
func (s *scaledStick) ScaleTo(target, _ float64) {
	s.calls = append(s.calls, target)
}

func TestScaleZoneEnterExit(t *testing.T) {
	def := ScaleDef{Center: [2]float64{0, 0}, HalfX: 3, HalfY: 0.5, Multiplier: 1.5, Duration: 250 * time.Millisecond, RestoreOnExit: true}
	z := NewScaleZone(def)
	s := &scaledStick{id: 1, seg: vmath.NewSegment(-1, 2, 1, 2), simulated: true}

	z.Update([]Scalable{s})
	assert.Empty(t, s.calls, "above the zone")

	s.seg = s.seg.Translate(vmath.V(0, -1.8))
	z.Update([]Scalable{s})
	z.Update([]Scalable{s})
	assert.Equal(t, []float64{1.5}, s.calls, "scales once on entry")
	assert.True(t, z.Inside(1))

	s.seg = s.seg.Translate(vmath.V(0, -2))
	z.Update([]Scalable{s})
	assert.Equal(t, []float64{1.5, 1}, s.calls, "restores on exit")
	assert.False(t, z.Inside(1))
}

func TestScaleZoneKeepsScaleWithoutRestore(t *testing.T) {
	def := DefaultScale()
	def.HalfX, def.HalfY, def.RestoreOnExit = 2, 2, false
	z := NewScaleZone(def)
	s := &scaledStick{id: 7, seg: vmath.NewSegment(-1, 0, 1, 0), simulated: true}

	z.Update([]Scalable{s})
	s.seg = s.seg.Translate(vmath.V(0, -10))
	z.Update([]Scalable{s})
	assert.Equal(t, []float64{def.Multiplier}, s.calls)
}

func TestScaleZoneIgnoresHaltedAndForgetsGone(t *testing.T) {
	z := NewScaleZone(ScaleDef{HalfX: 2, HalfY: 2, Multiplier: 2})
	halted := &scaledStick{id: 1, seg: vmath.NewSegment(-1, 0, 1, 0)}
	live := &scaledStick{id: 2, seg: vmath.NewSegment(-1, 0, 1, 0), simulated: true}

	z.Update([]Scalable{halted, live})
	assert.Empty(t, halted.calls, "snapped sticks keep their pose")
	require.True(t, z.Inside(2))

	z.Update(nil)
	assert.False(t, z.Inside(2))
}

func TestSegmentHitsBox(t *testing.T) {
	lo, hi := vmath.V(-1, -1), vmath.V(1, 1)
	tests := []struct {
		name string
		seg  vmath.Segment
		want bool
	}{
		{"inside", vmath.NewSegment(-0.5, 0, 0.5, 0), true},
		{"crossing", vmath.NewSegment(-5, 0, 5, 0), true},
		{"diagonal through corner region", vmath.NewSegment(-3, -2, 2, 3), true},
		{"above", vmath.NewSegment(-5, 2, 5, 2), false},
		{"diagonal miss", vmath.NewSegment(0, 3, 3, 0), false},
		{"vertical beside", vmath.NewSegment(2, -5, 2, 5), false},
		{"touching edge", vmath.NewSegment(-5, 1, 5, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segmentHitsBox(tt.seg, lo, hi))
		})
	}
}

func TestBuildScaleZone(t *testing.T) {
	zone := DefaultScale()
	zone.HalfX, zone.HalfY = 1, 1
	s, err := Build(Definition{Name: "z", Start: pair(0, 0), End: pair(1, 0), Scale: &zone})
	require.NoError(t, err)
	require.NotNil(t, s.Scale)
	lo, hi := s.Scale.Bounds()
	assert.Equal(t, vmath.V(-1, -1), lo)
	assert.Equal(t, vmath.V(1, 1), hi)

	bad := ScaleDef{HalfX: 1, HalfY: 1}
	_, err = Build(Definition{Name: "z", Start: pair(0, 0), End: pair(1, 0), Scale: &bad})
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.ErrorContains(t, err, "multiplier")
}
