package judge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stick-fit/vmath"
)

var poseCmp = cmpopts.EquateApprox(0, 1e-9)

func TestResolvePoseAxes(t *testing.T) {
	target := NewTarget(vmath.NewSegment(0, 0, 10, 0), 1)
	current := vmath.SegmentFromPose(vmath.V(5.3, 0.2), 3, 9.8)

	tests := []struct {
		name string
		axes SnapAxes
		want Pose
	}{
		{"all", AllAxes(), Pose{Center: vmath.V(5, 0), AngleDeg: 0, Length: 10}},
		{"none", SnapAxes{}, Pose{Center: vmath.V(5.3, 0.2), AngleDeg: 3, Length: 9.8}},
		{"keep length", SnapAxes{X: true, Y: true, Rotation: true}, Pose{Center: vmath.V(5, 0), AngleDeg: 0, Length: 9.8}},
		{"x only", SnapAxes{X: true}, Pose{Center: vmath.V(5, 0.2), AngleDeg: 3, Length: 9.8}},
		{"y and rotation", SnapAxes{Y: true, Rotation: true}, Pose{Center: vmath.V(5.3, 0), AngleDeg: 0, Length: 9.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePose(current, target, tt.axes)
			if diff := cmp.Diff(tt.want, got, poseCmp); diff != "" {
				t.Errorf("ResolvePose mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolvePoseAllAxesMatchesEndpoints(t *testing.T) {
	targets := []vmath.Segment{
		vmath.NewSegment(0, 0, 10, 0),
		vmath.NewSegment(-3, 2, 4, 7),
		vmath.NewSegment(1, 1, 1, 6),
	}
	for _, seg := range targets {
		target := NewTarget(seg, 0.5)
		pose := ResolvePose(vmath.NewSegment(100, 100, 101, 103), target, AllAxes())
		assert.Truef(t, pose.Segment().ApproxEqual(seg, 1e-9), "want %v got %v", seg, pose.Segment())
	}
}

func TestResolvePoseKeepsLengthExactly(t *testing.T) {
	target := NewTarget(vmath.NewSegment(0, 0, 10, 0), 1)
	current := vmath.NewSegment(0.3, 0.1, 10.05, 0.2)
	axes := AllAxes()
	axes.Length = false

	pose := ResolvePose(current, target, axes)
	assert.Equal(t, current.Length(), pose.Length)
	assert.InDelta(t, current.Length(), pose.Segment().Length(), 1e-12)
}

func TestResolvePoseZeroLengthFallsBack(t *testing.T) {
	target := NewTarget(vmath.NewSegment(0, 0, 10, 0), 1)
	pose := ResolvePose(vmath.NewSegment(2, 2, 2, 2), target, SnapAxes{})
	assert.InDelta(t, 10.0, pose.Length, 1e-12)
}

func TestJudgeSnapCommitsPose(t *testing.T) {
	j, sink, _ := newTestJudge(t, DefaultConfig())
	stick := newFakeStick(0.2, 0.1, 10.1, 0.1)
	j.Track(stick)

	require.True(t, j.Tick(1).Cleared)
	require.Len(t, stick.poses, 1)
	assert.True(t, stick.Segment().ApproxEqual(vmath.NewSegment(0, 0, 10, 0), 1e-9))

	if diff := cmp.Diff(sink.cleared[0].Pose, stick.poses[0], poseCmp); diff != "" {
		t.Errorf("cleared pose differs from committed pose:\n%s", diff)
	}
}

func TestJudgeSnapPartialAxes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snap = SnapAxes{Rotation: true, Y: true}
	j, _, _ := newTestJudge(t, cfg)
	stick := newFakeStick(0.2, 0.1, 10.1, 0.1)
	before := stick.Segment()
	j.Track(stick)

	require.True(t, j.Tick(1).Cleared)
	after := stick.Segment()
	assert.InDelta(t, before.Length(), after.Length(), 1e-12)
	assert.InDelta(t, before.Midpoint()[0], after.Midpoint()[0], 1e-12)
	assert.InDelta(t, 0.0, after.Midpoint()[1], 1e-12)
}
