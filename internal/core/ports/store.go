package ports

import (
	"io"

	"go.trai.ch/vouch/internal/core/domain"
)

// ActionCache maps cache keys (conventionally one of the action's output
// paths) to recorded validity entries.
//
// The store is thread-compatible, not thread-safe: concurrent operations on
// different keys are expected, but the orchestrating build system must
// ensure at most one in-flight validation per key and must call Save,
// Clear, Dump, MergeIntoActionCacheStatistics, and ResetStatistics only
// when no actions are executing. AccountHit and AccountMiss are safe from
// any number of concurrent validation paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ActionCache interface {
	// Put inserts or replaces the entry for key.
	Put(key string, entry *domain.Entry)

	// Get returns the stored entry, domain.CorruptedEntry if the persisted
	// record failed to decode, or nil if no record exists. It never fails
	// for a missing key.
	Get(key string) *domain.Entry

	// Remove deletes the entry for key if present.
	Remove(key string)

	// Save flushes in-memory state to durable storage and returns the
	// number of bytes written.
	Save() (int64, error)

	// Clear removes all entries and releases held storage.
	Clear() error

	// Dump writes a deterministic, human-readable listing of every entry.
	Dump(out io.Writer) error

	// Keys returns every stored key in lexicographic order.
	Keys() []string

	// AccountHit accounts one cache hit.
	AccountHit()

	// AccountMiss accounts one cache miss for the given reason.
	AccountMiss(reason domain.MissReason)

	// MergeIntoActionCacheStatistics adds the current counters to rec. The
	// extracted values are not a consistent snapshot across counters.
	MergeIntoActionCacheStatistics(rec *domain.ActionCacheStatistics)

	// ResetStatistics zeroes the counters.
	ResetStatistics()
}
