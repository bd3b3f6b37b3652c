package ports

// SourceResolver defines the interface for inspecting the source tree during
// manifest resolution.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceResolver interface {
	// Glob expands a glob pattern relative to root into sorted, deduplicated
	// file paths relative to root. A pattern matching nothing yields an empty
	// result, not an error.
	Glob(root, pattern string) ([]string, error)

	// Exists reports whether the given path exists below root.
	Exists(root, path string) (bool, error)
}
