package domain

import "sync"

// MissReason categorizes why a cache lookup did not yield a valid prior
// result. It is an open enumeration: the statistics counters accept any
// reason value, not just the predefined constants, so the surrounding
// telemetry system can introduce reasons without changes here.
type MissReason string

const (
	// MissReasonNotCached means no record existed for the key.
	MissReasonNotCached MissReason = "not_cached"
	// MissReasonDifferentActionKey means the action's declared configuration changed.
	MissReasonDifferentActionKey MissReason = "different_action_key"
	// MissReasonDifferentEnvironment means the consumed client environment changed.
	MissReasonDifferentEnvironment MissReason = "different_environment"
	// MissReasonDifferentFiles means the combined artifact digest changed.
	MissReasonDifferentFiles MissReason = "different_files"
	// MissReasonDifferentDeps means the set of discovered inputs changed.
	MissReasonDifferentDeps MissReason = "different_deps"
	// MissReasonCorruptedCacheEntry means the persisted record failed to decode.
	MissReasonCorruptedCacheEntry MissReason = "corrupted_cache_entry"
	// MissReasonUnconditionalExecution means the action is never cached.
	MissReasonUnconditionalExecution MissReason = "unconditional_execution"
)

// ActionCacheStatistics is the record that cache counters are merged into
// at quiescent points between build phases.
type ActionCacheStatistics struct {
	Hits   uint64
	Misses map[MissReason]uint64
}

// AddHit accumulates hits into the record.
func (r *ActionCacheStatistics) AddHit(n uint64) {
	r.Hits += n
}

// AddMiss accumulates misses for one reason into the record.
func (r *ActionCacheStatistics) AddMiss(reason MissReason, n uint64) {
	if n == 0 {
		return
	}
	if r.Misses == nil {
		r.Misses = make(map[MissReason]uint64)
	}
	r.Misses[reason] += n
}

// MissTotal returns the sum of all per-reason miss counts.
func (r *ActionCacheStatistics) MissTotal() uint64 {
	var total uint64
	for _, n := range r.Misses {
		total += n
	}
	return total
}

// Statistics counts cache hits and per-reason misses. Hit and Miss are safe
// to call from concurrent action-validation paths. MergeInto and Reset do
// not take a consistent cross-counter snapshot and are meant to be called
// only when no actions are running.
type Statistics struct {
	mu     sync.Mutex
	hits   uint64
	misses map[MissReason]uint64
}

// Hit accounts one cache hit.
func (s *Statistics) Hit() {
	s.mu.Lock()
	s.hits++
	s.mu.Unlock()
}

// Miss accounts one cache miss for the given reason. Unrecognized reasons
// are counted individually, not dropped.
func (s *Statistics) Miss(reason MissReason) {
	s.mu.Lock()
	if s.misses == nil {
		s.misses = make(map[MissReason]uint64)
	}
	s.misses[reason]++
	s.mu.Unlock()
}

// MergeInto adds the current counts to the given record.
func (s *Statistics) MergeInto(rec *ActionCacheStatistics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.AddHit(s.hits)
	for reason, n := range s.misses {
		rec.AddMiss(reason, n)
	}
}

// Reset zeroes all counters, starting a fresh counting window.
func (s *Statistics) Reset() {
	s.mu.Lock()
	s.hits = 0
	s.misses = nil
	s.mu.Unlock()
}
