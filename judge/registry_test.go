package judge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrderAndRemoval(t *testing.T) {
	r := NewRegistry()
	now := time.Unix(0, 0)

	a := r.Add(newFakeStick(0, 0, 10, 0), now)
	b := r.Add(newFakeStick(0, 1, 10, 1), now)
	c := r.Add(newFakeStick(0, 2, 10, 2), now)
	require.Equal(t, 3, r.Len())
	assert.Equal(t, []RecordID{c, b, a}, r.ReverseIDs())

	active, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, c, active.ID)

	// Removing while walking the reverse snapshot visits every ID exactly once
	var visited []RecordID
	for _, id := range r.ReverseIDs() {
		visited = append(visited, id)
		if id == b {
			assert.True(t, r.Remove(id))
		}
	}
	assert.Equal(t, []RecordID{c, b, a}, visited)
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Remove(b), "double remove")

	_, ok = r.Get(b)
	assert.False(t, ok)

	// IDs are never reused
	d := r.Add(newFakeStick(0, 0, 1, 0), now)
	assert.Greater(t, d, c)

	r.Clear()
	assert.Zero(t, r.Len())
	_, ok = r.Active()
	assert.False(t, ok)
	e := r.Add(newFakeStick(0, 0, 1, 0), now)
	assert.Greater(t, e, d)
}

func TestRegistryMaxRatioMonotonic(t *testing.T) {
	r := NewRegistry()
	id := r.Add(newFakeStick(0, 0, 10, 0), time.Now())

	steps := []struct {
		ratio    float64
		lengthOK bool
		wantMax  float64
		raised   bool
	}{
		{0.3, true, 0.3, true},
		{0.2, true, 0.3, false},
		{0.9, false, 0.3, false},
		{0.5, true, 0.5, true},
		{0.5, true, 0.5, false},
		{0, false, 0.5, false},
	}
	for i, s := range steps {
		raised := r.UpdateMax(id, s.ratio, s.lengthOK)
		rec, _ := r.Get(id)
		assert.Equalf(t, s.raised, raised, "step %d", i)
		assert.InDeltaf(t, s.wantMax, rec.MaxRatio, 1e-12, "step %d", i)
		assert.Equal(t, s.lengthOK, rec.LengthOK)
		assert.Equal(t, i+1, rec.Ticks)
	}

	assert.False(t, r.UpdateMax(id+100, 1, true), "unknown id")
}

func TestRegistryBestNewestWinsTie(t *testing.T) {
	r := NewRegistry()
	now := time.Now()
	a := r.Add(newFakeStick(0, 0, 10, 0), now)
	b := r.Add(newFakeStick(0, 0, 10, 0), now)

	r.UpdateMax(a, 0.7, true)
	best, ok := r.Best()
	require.True(t, ok)
	assert.Equal(t, a, best.ID)

	r.UpdateMax(b, 0.7, true)
	best, _ = r.Best()
	assert.Equal(t, b, best.ID)

	var seen []RecordID
	r.ForEach(func(rec *Record) bool {
		seen = append(seen, rec.ID)
		return false
	})
	assert.Equal(t, []RecordID{a}, seen, "ForEach stops early")
}
