package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/srccache/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the script walker node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ReaderNodeID is the unique identifier for the source reader node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceReader, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(walker), nil
		},
	})
}
