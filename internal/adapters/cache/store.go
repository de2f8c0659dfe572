// Package cache implements the persistent action cache store.
package cache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/vouch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ActionCache = (*Store)(nil)

// Store implements ports.ActionCache with one record file per key under a
// cache directory. Records are loaded eagerly at construction; Put, Get,
// and Remove work on the in-memory map, and Save flushes changed records
// back to disk.
//
// The mutex guards the map itself so that validations of different keys
// can run in parallel. It does not serialize concurrent mutation of the
// same key or concurrent Save/Clear; that coordination belongs to the
// build orchestrator.
type Store struct {
	dir    string
	logger ports.Logger

	mu      sync.RWMutex
	entries map[string]*domain.Entry
	dirty   map[string]struct{}
	removed map[string]struct{}

	stats domain.Statistics
}

// NewStore creates a Store backed by the given directory and loads every
// persisted record. A record that fails to decode is kept in the map as
// the corrupted marker under its own key.
func NewStore(dir string, logger ports.Logger) (*Store, error) {
	s := &Store{
		dir:     filepath.Clean(dir),
		logger:  logger,
		entries: make(map[string]*domain.Entry),
		dirty:   make(map[string]struct{}),
		removed: make(map[string]struct{}),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read cache directory"), "dir", s.dir)
	}

	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), domain.RecordFileExt) {
			continue
		}
		path := filepath.Join(s.dir, de.Name())
		//nolint:gosec // Path is derived from the trusted cache directory
		data, err := os.ReadFile(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read cache record"), "path", path)
		}

		key, entry, err := decodeRecord(data)
		if err != nil {
			// Frame too mangled to recover the key. The record cannot be
			// attributed to any lookup, so it is dropped with a warning.
			s.logger.Warn("dropping unattributable cache record: " + de.Name())
			continue
		}
		s.entries[key] = entry
	}
	return nil
}

// Put inserts or replaces the entry for key.
func (s *Store) Put(key string, entry *domain.Entry) {
	s.mu.Lock()
	s.entries[key] = entry
	s.dirty[key] = struct{}{}
	delete(s.removed, key)
	s.mu.Unlock()
}

// Get returns the entry for key, the corrupted marker if the persisted
// record failed to decode, or nil if no record exists.
func (s *Store) Get(key string) *domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[key]
}

// Remove deletes the entry for key if present.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		delete(s.dirty, key)
		s.removed[key] = struct{}{}
	}
	s.mu.Unlock()
}

// Save writes every changed record to disk, deletes the files of removed
// keys, and returns the number of bytes written. It is meant to be called
// at quiescent points; it is not a write-ahead log.
func (s *Store) Save() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrStoreSaveFailed.Error()), "dir", s.dir)
	}

	var written int64
	for key := range s.dirty {
		entry := s.entries[key]
		if entry.IsCorrupted() {
			// A corrupted marker has no payload to serialize. The on-disk
			// bytes that produced it are left as they are.
			continue
		}
		frame, err := encodeRecord(key, entry)
		if err != nil {
			return written, zerr.With(err, "key", key)
		}
		path := s.recordPath(key)
		//nolint:gosec // Path is derived from the trusted cache directory
		if err := os.WriteFile(path, frame, domain.FilePerm); err != nil {
			return written, zerr.With(zerr.Wrap(err, domain.ErrStoreSaveFailed.Error()), "path", path)
		}
		written += int64(len(frame))
	}

	for key := range s.removed {
		if err := os.Remove(s.recordPath(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return written, zerr.With(zerr.Wrap(err, domain.ErrStoreSaveFailed.Error()), "key", key)
		}
	}

	s.dirty = make(map[string]struct{})
	s.removed = make(map[string]struct{})
	return written, nil
}

// Clear removes all entries in memory and on disk. Subsequent Get calls
// return nil for every key until the store is repopulated.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear cache directory"), "dir", s.dir)
	}
	s.entries = make(map[string]*domain.Entry)
	s.dirty = make(map[string]struct{})
	s.removed = make(map[string]struct{})
	return nil
}

// Dump writes every entry to out, keyed and sorted, in the deterministic
// rendering of domain.Entry. Identical cache contents always produce
// identical dumps.
func (s *Store) Dump(out io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(out, "  %s:\n%s\n", key, s.entries[key]); err != nil {
			return zerr.Wrap(err, "failed to write cache dump")
		}
	}
	return nil
}

// Keys returns every stored key in lexicographic order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AccountHit accounts one cache hit.
func (s *Store) AccountHit() {
	s.stats.Hit()
}

// AccountMiss accounts one cache miss for the given reason.
func (s *Store) AccountMiss(reason domain.MissReason) {
	s.stats.Miss(reason)
}

// MergeIntoActionCacheStatistics adds the current counters to rec.
func (s *Store) MergeIntoActionCacheStatistics(rec *domain.ActionCacheStatistics) {
	s.stats.MergeInto(rec)
}

// ResetStatistics zeroes the counters.
func (s *Store) ResetStatistics() {
	s.stats.Reset()
}

func (s *Store) recordPath(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x%s", xxhash.Sum64String(key), domain.RecordFileExt))
}
