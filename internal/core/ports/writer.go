package ports

import (
	"context"

	"go.libhal.dev/halpack/internal/core/domain"
)

// PackageWriter defines the interface for materializing the resolved copy set.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type PackageWriter interface {
	// Apply copies every operation from the source root into the package
	// root, creating directories as needed. It fails on the first error.
	Apply(ctx context.Context, sourceRoot, packageRoot string, ops []domain.CopyOperation) error
}
