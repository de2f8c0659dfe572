package domain_test

import (
	"sync"
	"testing"

	"go.trai.ch/vouch/internal/core/domain"
)

func TestStatistics_MergeAndReset(t *testing.T) {
	var stats domain.Statistics
	stats.Hit()
	stats.Miss(domain.MissReasonNotCached)
	stats.Miss(domain.MissReasonDifferentFiles)
	stats.Miss(domain.MissReasonDifferentFiles)

	var rec domain.ActionCacheStatistics
	stats.MergeInto(&rec)

	if rec.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", rec.Hits)
	}
	if got := rec.Misses[domain.MissReasonNotCached]; got != 1 {
		t.Errorf("expected 1 not_cached miss, got %d", got)
	}
	if got := rec.Misses[domain.MissReasonDifferentFiles]; got != 2 {
		t.Errorf("expected 2 different_files misses, got %d", got)
	}
	if got := rec.MissTotal(); got != 3 {
		t.Errorf("expected miss total 3, got %d", got)
	}

	// Merging again accumulates rather than overwriting.
	stats.MergeInto(&rec)
	if rec.Hits != 2 || rec.MissTotal() != 6 {
		t.Errorf("expected accumulated 2/6, got %d/%d", rec.Hits, rec.MissTotal())
	}

	stats.Reset()
	var fresh domain.ActionCacheStatistics
	stats.MergeInto(&fresh)
	if fresh.Hits != 0 || fresh.MissTotal() != 0 {
		t.Errorf("expected zero counters after reset, got %d/%d", fresh.Hits, fresh.MissTotal())
	}
}

func TestStatistics_OpenReasonVocabulary(t *testing.T) {
	var stats domain.Statistics
	stats.Miss(domain.MissReason("speculative_prefetch"))

	var rec domain.ActionCacheStatistics
	stats.MergeInto(&rec)
	if got := rec.Misses[domain.MissReason("speculative_prefetch")]; got != 1 {
		t.Errorf("expected unrecognized reason to be counted, got %d", got)
	}
}

func TestStatistics_ConcurrentCounting(t *testing.T) {
	var stats domain.Statistics
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				stats.Hit()
				stats.Miss(domain.MissReasonDifferentActionKey)
			}
		}()
	}
	wg.Wait()

	var rec domain.ActionCacheStatistics
	stats.MergeInto(&rec)
	if rec.Hits != 800 {
		t.Errorf("expected 800 hits, got %d", rec.Hits)
	}
	if got := rec.Misses[domain.MissReasonDifferentActionKey]; got != 800 {
		t.Errorf("expected 800 misses, got %d", got)
	}
}

func TestActionCacheStatistics_AddMissZero(t *testing.T) {
	var rec domain.ActionCacheStatistics
	rec.AddMiss(domain.MissReasonNotCached, 0)
	if rec.Misses != nil {
		t.Error("adding zero misses must not allocate the reason map")
	}
}
