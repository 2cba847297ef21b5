package compcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/srccache/internal/adapters/heap"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/srccache/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/srccache/internal/core/ports"
)

// NodeID is the unique identifier for the compilation cache Graft node.
const NodeID graft.ID = "engine.compilation_cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			heap.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[ports.Collector](ctx)
			if err != nil {
				return nil, err
			}

			c := New(WithLogger(log))
			collector.Observe(c)
			collector.AddRoots(c)
			return c, nil
		},
	})
}
