package domain

import "runtime"

// Settings is the resolved project configuration.
type Settings struct {
	// CacheDir is the directory holding persisted cache records.
	CacheDir string

	// Parallelism bounds concurrent fingerprinting during revalidation.
	Parallelism int

	// TrackedEnv lists the environment variable names whose values feed
	// the used-client-env digest.
	TrackedEnv []string
}

// DefaultSettings returns the settings used when no configuration file is
// present.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:    DefaultCachePath(),
		Parallelism: runtime.NumCPU(),
		TrackedEnv:  []string{"PATH"},
	}
}
