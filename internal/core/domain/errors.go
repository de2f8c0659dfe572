package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicatePath is returned when the same relative path is registered
	// twice on one entry builder.
	ErrDuplicatePath = zerr.New("path already registered")

	// ErrBuilderFinalized is returned when an entry builder is used after Build.
	ErrBuilderFinalized = zerr.New("entry builder already finalized")

	// ErrStoreSaveFailed is returned when flushing the cache to durable
	// storage fails.
	ErrStoreSaveFailed = zerr.New("failed to save action cache")
)
