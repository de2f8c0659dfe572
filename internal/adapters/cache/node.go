package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vouch/internal/adapters/config"
	"go.trai.ch/vouch/internal/adapters/logger"
	"go.trai.ch/vouch/internal/core/domain"
	"go.trai.ch/vouch/internal/core/ports"
)

// NodeID is the unique identifier for the action cache Graft node.
const NodeID graft.ID = "adapter.action_cache"

func init() {
	graft.Register(graft.Node[ports.ActionCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ActionCache, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.CacheDir, log)
		},
	})
}
