package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.libhal.dev/halpack/internal/core/ports"
)

// NodeID is the unique identifier for the profile loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ProfileLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProfileLoader, error) {
			return NewLoader(NewOSFS()), nil
		},
	})
}
