package validator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vouch/internal/adapters/cache"
	"go.trai.ch/vouch/internal/adapters/fs"
	"go.trai.ch/vouch/internal/adapters/logger"
	"go.trai.ch/vouch/internal/adapters/telemetry/progrock"
	"go.trai.ch/vouch/internal/core/ports"
)

// NodeID is the unique identifier for the validator Graft node.
const NodeID graft.ID = "engine.validator"

func init() {
	graft.Register(graft.Node[*Validator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Validator, error) {
			store, err := graft.Dep[ports.ActionCache](ctx)
			if err != nil {
				return nil, err
			}
			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, fingerprinter, log, telemetry), nil
		},
	})
}
