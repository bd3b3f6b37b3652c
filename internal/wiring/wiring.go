// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.libhal.dev/halpack/internal/adapters/cas"
	_ "go.libhal.dev/halpack/internal/adapters/config"
	_ "go.libhal.dev/halpack/internal/adapters/fs"
	_ "go.libhal.dev/halpack/internal/adapters/logger"
	_ "go.libhal.dev/halpack/internal/adapters/telemetry/progrock"
	_ "go.libhal.dev/halpack/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.libhal.dev/halpack/internal/app"
	_ "go.libhal.dev/halpack/internal/engine/manifest"
)
