// Package fs provides file-system backed artifact fingerprinting.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/zeebo/blake3"
	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/vouch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes artifact fingerprints from file content.
type Fingerprinter struct {
	// Parallelism bounds concurrent file hashing in Snapshot. Zero means
	// one goroutine per available CPU.
	Parallelism int
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint computes the BLAKE3 content digest, size, and mtime of the
// file at root/relativePath.
func (f *Fingerprinter) Fingerprint(root, relativePath string) (domain.Fingerprint, error) {
	path := filepath.Join(root, relativePath)

	info, err := os.Stat(path)
	if err != nil {
		return domain.Fingerprint{}, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}

	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Fingerprint{}, zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return domain.Fingerprint{}, zerr.With(zerr.Wrap(err, "failed to hash artifact content"), "path", path)
	}

	var digest domain.Digest
	copy(digest[:], hasher.Sum(nil))

	return domain.Fingerprint{
		ContentDigest: digest,
		Size:          info.Size(),
		MTimeNS:       info.ModTime().UnixNano(),
	}, nil
}

// Snapshot fingerprints the given relative paths concurrently and returns
// them keyed by path. The first failure cancels the remaining work.
func (f *Fingerprinter) Snapshot(ctx context.Context, root string, relativePaths []string) (map[string]domain.Fingerprint, error) {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(f.limit())

	var mu sync.Mutex
	result := make(map[string]domain.Fingerprint, len(relativePaths))

	for _, rel := range relativePaths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fp, err := f.Fingerprint(root, rel)
			if err != nil {
				return err
			}
			mu.Lock()
			result[rel] = fp
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (f *Fingerprinter) limit() int {
	if f.Parallelism > 0 {
		return f.Parallelism
	}
	return defaultParallelism()
}
