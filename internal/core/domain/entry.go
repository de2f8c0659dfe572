package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

type entryKind uint8

const (
	entryValid entryKind = iota
	entryCorrupted
)

// Entry is one action's recorded validity state: the action key, the digest
// of the client environment it consumed, the discovered-input paths (if the
// action discovers inputs), and the combined digest over all artifacts.
//
// An Entry never mutates after construction. A second, distinguished kind
// of Entry represents a persisted record that could not be decoded; it is
// obtained from CorruptedEntry and detected with IsCorrupted, never by
// field inspection.
type Entry struct {
	kind                entryKind
	actionKey           string
	usedClientEnvDigest Digest
	files               []string
	discovers           bool
	digest              Digest
}

// CorruptedEntry is the marker for a persisted record that failed to decode
// or validate. It is produced only by the persistence layer, never by the
// builder.
var CorruptedEntry = &Entry{kind: entryCorrupted}

// NewEntry constructs a valid Entry. When discovers is false the paths
// argument is ignored; when it is true an empty (or nil) paths slice is a
// legitimate state meaning the action discovered zero inputs.
func NewEntry(actionKey string, usedClientEnvDigest Digest, discovers bool, paths []string, digest Digest) *Entry {
	var files []string
	if discovers && len(paths) > 0 {
		files = make([]string, len(paths))
		copy(files, paths)
	}
	return &Entry{
		actionKey:           actionKey,
		usedClientEnvDigest: usedClientEnvDigest,
		files:               files,
		discovers:           discovers,
		digest:              digest,
	}
}

// IsCorrupted reports whether this is the corrupted marker.
func (e *Entry) IsCorrupted() bool {
	return e.kind == entryCorrupted
}

// ActionKey returns the string identifying the action's declared
// configuration.
func (e *Entry) ActionKey() string {
	return e.actionKey
}

// UsedClientEnvDigest returns the digest of the environment variables the
// action consumed.
func (e *Entry) UsedClientEnvDigest() Digest {
	return e.usedClientEnvDigest
}

// CombinedDigest returns the order-independent digest over all artifacts
// and the environment digest.
func (e *Entry) CombinedDigest() Digest {
	return e.digest
}

// DiscoversInputs reports whether the originating action discovers inputs
// dynamically. Callers must use this, not emptiness of Paths, to tell the
// two states apart.
func (e *Entry) DiscoversInputs() bool {
	return e.discovers
}

// Paths returns the discovered-input paths. It never returns nil, so
// callers can iterate unconditionally; for non-discovering actions it is
// always empty.
func (e *Entry) Paths() []string {
	if !e.discovers || len(e.files) == 0 {
		return []string{}
	}
	out := make([]string, len(e.files))
	copy(out, e.files)
	return out
}

// Equal reports whether two entries carry identical recorded state.
// Corrupted markers are equal only to themselves.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.kind != other.kind {
		return false
	}
	if e.kind == entryCorrupted {
		return true
	}
	if e.actionKey != other.actionKey ||
		e.usedClientEnvDigest != other.usedClientEnvDigest ||
		e.digest != other.digest ||
		e.discovers != other.discovers ||
		len(e.files) != len(other.files) {
		return false
	}
	a := append([]string(nil), e.files...)
	b := append([]string(nil), other.files...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the entry deterministically: action key, both digests in
// lowercase hex, then the discovered paths sorted lexicographically.
// Entries built from the same artifact set in different orders render
// identically, which keeps cache dumps diffable across runs.
func (e *Entry) String() string {
	var b strings.Builder
	if e.IsCorrupted() {
		b.WriteString("      corrupted cache entry\n")
		return b.String()
	}
	b.WriteString("      actionKey = ")
	b.WriteString(e.actionKey)
	b.WriteString("\n      usedClientEnvKey = ")
	b.WriteString(e.usedClientEnvDigest.Hex())
	b.WriteString("\n      digestKey = ")
	b.WriteString(e.digest.Hex())
	b.WriteString("\n")

	if e.discovers {
		paths := make([]string, len(e.files))
		copy(paths, e.files)
		sort.Strings(paths)
		for _, p := range paths {
			b.WriteString("      ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// EntryBuilder accumulates artifacts for one action and finalizes them into
// an immutable Entry. A builder is single-use: Build consumes it, and any
// call after that fails with ErrBuilderFinalized.
type EntryBuilder struct {
	actionKey string
	envDigest Digest
	discovers bool
	files     []string
	seen      map[string]struct{}
	hasher    *OrderIndependentHasher
	finalized bool
}

// NewEntryBuilder creates a builder for the given action identity, the map
// of environment variables the action actually reads, and whether the
// action performs input discovery.
func NewEntryBuilder(actionKey string, usedClientEnv map[string]string, discoversInputs bool) *EntryBuilder {
	return &EntryBuilder{
		actionKey: actionKey,
		envDigest: DigestOfEnv(usedClientEnv),
		discovers: discoversInputs,
		seen:      make(map[string]struct{}),
		hasher:    NewOrderIndependentHasher(),
	}
}

// AddFile registers one artifact by its relative path and fingerprint.
// Registering the same path twice corrupts the meaning of the combined
// digest, so the second registration is rejected with ErrDuplicatePath and
// nothing is folded into the accumulator.
func (b *EntryBuilder) AddFile(relativePath string, fp Fingerprint) error {
	if b.finalized {
		return zerr.With(ErrBuilderFinalized, "path", relativePath)
	}
	if _, dup := b.seen[relativePath]; dup {
		return zerr.With(ErrDuplicatePath, "path", relativePath)
	}
	b.seen[relativePath] = struct{}{}

	if b.discovers {
		b.files = append(b.files, relativePath)
	}
	b.hasher.AddArtifact(relativePath, fp)
	return nil
}

// Build folds the environment digest into the accumulator and returns the
// finished Entry. The builder cannot be used again afterwards.
func (b *EntryBuilder) Build() (*Entry, error) {
	if b.finalized {
		return nil, ErrBuilderFinalized
	}
	b.finalized = true

	return &Entry{
		actionKey:           b.actionKey,
		usedClientEnvDigest: b.envDigest,
		files:               b.files,
		discovers:           b.discovers,
		digest:              b.hasher.Finish(b.envDigest),
	}, nil
}
