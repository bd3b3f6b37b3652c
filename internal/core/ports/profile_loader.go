package ports

import "go.libhal.dev/halpack/internal/core/domain"

// ProfileLoader defines the interface for loading the packaging profile.
//
//go:generate mockgen -source=profile_loader.go -destination=mocks/mock_profile_loader.go -package=mocks
type ProfileLoader interface {
	// Load reads the packaging profile from the given source root.
	// A missing profile file yields the zero profile, not an error.
	Load(sourceRoot string) (domain.Profile, error)
}
