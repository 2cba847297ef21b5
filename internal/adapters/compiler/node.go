package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/srccache/internal/adapters/heap"
	"go.trai.ch/srccache/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{heap.NodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			collector, err := graft.Dep[ports.Collector](ctx)
			if err != nil {
				return nil, err
			}
			return New(collector), nil
		},
	})
}
