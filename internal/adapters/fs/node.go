package fs

import (
	"context"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/vouch/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprinter Graft node.
const NodeID graft.ID = "adapter.fingerprinter"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}

func defaultParallelism() int {
	return runtime.NumCPU()
}
