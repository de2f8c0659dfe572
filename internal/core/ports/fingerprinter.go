package ports

import (
	"context"

	"go.trai.ch/vouch/internal/core/domain"
)

// Fingerprinter supplies content fingerprints for artifacts by relative
// path. Implementations live in the file-system layer; the cache core
// treats fingerprints as opaque.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns the fingerprint of the file at root/relativePath.
	Fingerprint(root, relativePath string) (domain.Fingerprint, error)

	// Snapshot fingerprints many relative paths concurrently and returns
	// them keyed by path.
	Snapshot(ctx context.Context, root string, relativePaths []string) (map[string]domain.Fingerprint, error)
}
