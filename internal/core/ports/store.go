package ports

import "go.libhal.dev/halpack/internal/core/domain"

// RecordStore defines the interface for storing and retrieving packaging
// records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a package reference.
	// Returns nil, nil if not found.
	Get(root, ref string) (*domain.BuildRecord, error)

	// Put stores the record below root.
	Put(root string, rec domain.BuildRecord) error
}
