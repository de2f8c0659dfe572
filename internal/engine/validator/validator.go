// Package validator implements action cache validity checking.
package validator

import (
	"context"
	"sort"
	"sync"

	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/vouch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Validator decides whether an action's previous result is still valid by
// comparing a freshly built entry against the stored one, and accounts
// every decision as a hit or a categorized miss. It never executes
// actions; on a miss the orchestrator re-runs the action and calls Record
// with the new entry.
type Validator struct {
	cache         ports.ActionCache
	fingerprinter ports.Fingerprinter
	logger        ports.Logger
	telemetry     ports.Telemetry
}

// New creates a new Validator.
func New(
	cache ports.ActionCache,
	fingerprinter ports.Fingerprinter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Validator {
	return &Validator{
		cache:         cache,
		fingerprinter: fingerprinter,
		logger:        logger,
		telemetry:     telemetry,
	}
}

// Check compares fresh against the stored entry for key and returns
// whether the previous result is still valid, plus the miss reason when it
// is not. The outcome is accounted in the cache statistics.
func (v *Validator) Check(key string, fresh *domain.Entry) (bool, domain.MissReason) {
	reason, hit := v.classify(v.cache.Get(key), fresh)
	if hit {
		v.cache.AccountHit()
		return true, ""
	}
	v.cache.AccountMiss(reason)
	return false, reason
}

// Record stores the entry for key after the orchestrator re-executed the
// action.
func (v *Validator) Record(key string, fresh *domain.Entry) {
	v.cache.Put(key, fresh)
}

func (v *Validator) classify(prev, fresh *domain.Entry) (domain.MissReason, bool) {
	switch {
	case prev == nil:
		return domain.MissReasonNotCached, false
	case prev.IsCorrupted():
		return domain.MissReasonCorruptedCacheEntry, false
	case prev.ActionKey() != fresh.ActionKey():
		return domain.MissReasonDifferentActionKey, false
	case prev.UsedClientEnvDigest() != fresh.UsedClientEnvDigest():
		return domain.MissReasonDifferentEnvironment, false
	case prev.DiscoversInputs() != fresh.DiscoversInputs():
		return domain.MissReasonDifferentDeps, false
	case prev.CombinedDigest() != fresh.CombinedDigest():
		return domain.MissReasonDifferentFiles, false
	default:
		return "", true
	}
}

// RevalidationReport summarizes a store-wide revalidation pass.
type RevalidationReport struct {
	Valid        int
	Stale        int
	Corrupted    int
	Unverifiable int

	// StaleKeys lists the keys whose recorded digest no longer matches the
	// filesystem, in lexicographic order.
	StaleKeys []string
}

// Revalidate re-checks every stored entry against the filesystem rooted at
// root. For input-discovering entries the recorded paths are
// re-fingerprinted and folded through the order-independent combiner with
// the recorded environment digest; the result is compared against the
// recorded combined digest. Entries without a recorded path list cannot be
// recomputed from the store alone and are counted as unverifiable.
//
// Meant for quiescent points: it reads the whole store and must not race
// with concurrent mutation.
func (v *Validator) Revalidate(ctx context.Context, root string, parallelism int) (*RevalidationReport, error) {
	keys := v.cache.Keys()

	var mu sync.Mutex
	report := &RevalidationReport{}

	group, ctx := errgroup.WithContext(ctx)
	if parallelism <= 0 {
		parallelism = 1
	}
	group.SetLimit(parallelism)

	for _, key := range keys {
		group.Go(func() error {
			ctx, vertex := v.telemetry.Record(ctx, key)
			valid, outcome, err := v.revalidateOne(ctx, root, key)
			if err != nil {
				vertex.Complete(err)
				return zerr.With(err, "key", key)
			}
			if valid {
				vertex.Cached()
			} else {
				vertex.Complete(nil)
			}

			mu.Lock()
			switch outcome {
			case outcomeValid:
				report.Valid++
			case outcomeStale:
				report.Stale++
				report.StaleKeys = append(report.StaleKeys, key)
			case outcomeCorrupted:
				report.Corrupted++
			case outcomeUnverifiable:
				report.Unverifiable++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(report.StaleKeys)
	return report, nil
}

type outcome uint8

const (
	outcomeValid outcome = iota
	outcomeStale
	outcomeCorrupted
	outcomeUnverifiable
)

func (v *Validator) revalidateOne(ctx context.Context, root, key string) (bool, outcome, error) {
	entry := v.cache.Get(key)
	if entry == nil {
		// Removed between Keys and Get; nothing to verify.
		return false, outcomeUnverifiable, nil
	}
	if entry.IsCorrupted() {
		return false, outcomeCorrupted, nil
	}
	if !entry.DiscoversInputs() {
		return false, outcomeUnverifiable, nil
	}

	paths := entry.Paths()
	fingerprints, err := v.fingerprinter.Snapshot(ctx, root, paths)
	if err != nil {
		// A recorded input that no longer exists means the result is
		// stale, not that revalidation failed.
		v.logger.Warn("cache entry references unreadable input: " + key)
		return false, outcomeStale, nil
	}

	hasher := domain.NewOrderIndependentHasher()
	for _, path := range paths {
		hasher.AddArtifact(path, fingerprints[path])
	}
	if hasher.Finish(entry.UsedClientEnvDigest()) != entry.CombinedDigest() {
		return false, outcomeStale, nil
	}
	return true, outcomeValid, nil
}
