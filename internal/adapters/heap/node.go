package heap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/srccache/internal/adapters/logger"
	"go.trai.ch/srccache/internal/core/ports"
)

// NodeID is the unique identifier for the heap Graft node.
const NodeID graft.ID = "adapter.heap"

func init() {
	graft.Register(graft.Node[ports.Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Collector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
