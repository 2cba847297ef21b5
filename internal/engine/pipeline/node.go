package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/srccache/internal/adapters/compiler"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/srccache/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/srccache/internal/engine/compcache"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			compcache.NodeID,
			compiler.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			cache, err := graft.Dep[*compcache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			comp, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(cache, comp, telemetry), nil
		},
	})
}
