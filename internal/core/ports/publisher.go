package ports

import "go.libhal.dev/halpack/internal/core/domain"

// Publisher defines the interface for handing the publish list to the
// consuming build tool.
//
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type Publisher interface {
	// Publish writes the ordered configuration entries for the package
	// consumer. Entry order must be preserved verbatim.
	Publish(packageRoot string, desc domain.Descriptor, entries []domain.ManifestEntry) error
}
