// Package app implements the application layer for vouch.
package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/vouch/internal/core/ports"
	"go.trai.ch/vouch/internal/engine/validator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cache     ports.ActionCache
	validator *validator.Validator
	settings  domain.Settings
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	cache ports.ActionCache,
	v *validator.Validator,
	settings domain.Settings,
	logger ports.Logger,
) *App {
	return &App{
		cache:     cache,
		validator: v,
		settings:  settings,
		logger:    logger,
	}
}

// Dump writes the deterministic listing of every cache entry to out.
func (a *App) Dump(out io.Writer) error {
	return a.cache.Dump(out)
}

// Stats writes the accumulated hit and per-reason miss counts to out.
func (a *App) Stats(out io.Writer) error {
	var rec domain.ActionCacheStatistics
	a.cache.MergeIntoActionCacheStatistics(&rec)

	if _, err := fmt.Fprintf(out, "hits: %d\nmisses: %d\n", rec.Hits, rec.MissTotal()); err != nil {
		return zerr.Wrap(err, "failed to write statistics")
	}

	reasons := make([]string, 0, len(rec.Misses))
	for reason := range rec.Misses {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		if _, err := fmt.Fprintf(out, "  %s: %d\n", reason, rec.Misses[domain.MissReason(reason)]); err != nil {
			return zerr.Wrap(err, "failed to write statistics")
		}
	}
	return nil
}

// Clean removes every cache entry and its persisted records.
func (a *App) Clean() error {
	if err := a.cache.Clear(); err != nil {
		return zerr.Wrap(err, "failed to clean action cache")
	}
	a.logger.Info("action cache cleared")
	return nil
}

// Verify re-checks every stored entry against the filesystem and writes a
// summary to out.
func (a *App) Verify(ctx context.Context, out io.Writer) error {
	report, err := a.validator.Revalidate(ctx, ".", a.settings.Parallelism)
	if err != nil {
		return zerr.Wrap(err, "revalidation failed")
	}

	if _, err := fmt.Fprintf(out, "valid: %d\nstale: %d\ncorrupted: %d\nunverifiable: %d\n",
		report.Valid, report.Stale, report.Corrupted, report.Unverifiable); err != nil {
		return zerr.Wrap(err, "failed to write revalidation report")
	}
	for _, key := range report.StaleKeys {
		if _, err := fmt.Fprintf(out, "  stale: %s\n", key); err != nil {
			return zerr.Wrap(err, "failed to write revalidation report")
		}
	}
	return nil
}

// Save flushes the cache to durable storage and returns the bytes written.
func (a *App) Save() (int64, error) {
	return a.cache.Save()
}

// Components bundles the application with the adapters the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Cache  ports.ActionCache
}
