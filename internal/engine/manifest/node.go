package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.libhal.dev/halpack/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.libhal.dev/halpack/internal/core/ports"
)

// NodeID is the unique identifier for the manifest resolver Graft node.
const NodeID graft.ID = "engine.manifest"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			source, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(source), nil
		},
	})
}
