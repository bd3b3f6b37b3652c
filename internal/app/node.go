package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.libhal.dev/halpack/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.libhal.dev/halpack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.libhal.dev/halpack/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.libhal.dev/halpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.libhal.dev/halpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.libhal.dev/halpack/internal/adapters/toolchain"          //nolint:depguard // Wired in app layer
	"go.libhal.dev/halpack/internal/core/ports"
	"go.libhal.dev/halpack/internal/engine/manifest"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			fs.CopierNodeID,
			toolchain.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	profiles, err := graft.Dep[ports.ProfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*manifest.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.PackageWriter](ctx)
	if err != nil {
		return nil, err
	}

	publisher, err := graft.Dep[ports.Publisher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(profiles, resolver, writer, publisher, store, hasher, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	mainApp, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    mainApp,
		Logger: log,
	}, nil
}
