package judge

import (
	"slices"
	"time"
)

// RecordID identifies a tracking record; never reused within a registry
type RecordID uint64

// Record is the tracking state of one in-flight stick
type Record struct {
	ID        RecordID
	Candidate Candidate
	LengthOK  bool      // length band result of the latest tick
	Ratio     float64   // overlap ratio of the latest tick
	MaxRatio  float64   // running best, monotonically non-decreasing
	CreatedAt time.Time // registration time
	Ticks     int       // evaluated ticks
}

// Registry holds one record per tracked stick, keyed by stable ID
// Order slice keeps insertion order; removal during a reverse scan is well-defined
// Owned by the judgment loop, not safe for concurrent use
type Registry struct {
	records map[RecordID]*Record
	order   []RecordID
	nextID  RecordID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[RecordID]*Record),
	}
}

// Add registers a candidate and returns its new ID
func (r *Registry) Add(c Candidate, now time.Time) RecordID {
	r.nextID++
	id := r.nextID
	r.records[id] = &Record{ID: id, Candidate: c, CreatedAt: now}
	r.order = append(r.order, id)
	return id
}

// Remove deregisters a record, returns false if it was not tracked
func (r *Registry) Remove(id RecordID) bool {
	if _, ok := r.records[id]; !ok {
		return false
	}
	delete(r.records, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Get returns the live record for id
func (r *Registry) Get(id RecordID) (*Record, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// Len returns the number of tracked records
func (r *Registry) Len() int { return len(r.order) }

// ForEach visits records in insertion order until fn returns false
func (r *Registry) ForEach(fn func(rec *Record) bool) {
	for _, id := range r.order {
		if !fn(r.records[id]) {
			return
		}
	}
}

// ReverseIDs returns a snapshot of IDs, newest first
// Callers may Remove while walking the snapshot
func (r *Registry) ReverseIDs() []RecordID {
	ids := slices.Clone(r.order)
	slices.Reverse(ids)
	return ids
}

// Active returns the most recently inserted record still tracked
func (r *Registry) Active() (*Record, bool) {
	if len(r.order) == 0 {
		return nil, false
	}
	return r.records[r.order[len(r.order)-1]], true
}

// Best returns the record with the highest MaxRatio, newest wins ties
func (r *Registry) Best() (*Record, bool) {
	var best *Record
	for _, id := range r.order {
		rec := r.records[id]
		if best == nil || rec.MaxRatio >= best.MaxRatio {
			best = rec
		}
	}
	return best, best != nil
}

// UpdateMax stores the tick result and raises MaxRatio when lengthOK holds
// Returns true if MaxRatio increased
func (r *Registry) UpdateMax(id RecordID, ratio float64, lengthOK bool) bool {
	rec, ok := r.records[id]
	if !ok {
		return false
	}
	rec.LengthOK = lengthOK
	rec.Ratio = ratio
	rec.Ticks++
	if lengthOK && ratio > rec.MaxRatio {
		rec.MaxRatio = ratio
		return true
	}
	return false
}

// Clear drops every record; IDs keep increasing
func (r *Registry) Clear() {
	clear(r.records)
	r.order = r.order[:0]
}
