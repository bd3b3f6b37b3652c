package domain

// Role tags a published entry with its semantic meaning for the consumer.
type Role string

// RoleToolchainFragment marks a CMake fragment the consumer layers into its
// generated toolchain file.
const RoleToolchainFragment Role = "toolchain-fragment"

// CopyRule is one fixed source-pattern-to-destination rule of the copy set.
type CopyRule struct {
	// Pattern is a glob pattern relative to the source root.
	Pattern string

	// Dest is the destination directory relative to the package root. When
	// empty, the source's own relative path is mirrored.
	Dest string

	// Required marks rules whose file must exist at the source root.
	Required bool
}

// CopyOperation is a single resolved file copy from the source root into the
// package root. Paths are relative to their respective roots.
type CopyOperation struct {
	Source string
	Dest   string
}

// ManifestEntry is one configuration path published to the consumer.
type ManifestEntry struct {
	// Path is the absolute path of the published file.
	Path string

	// Role tags the semantic meaning of the entry.
	Role Role
}

// Manifest is the resolved outcome of a packaging run: the files to copy and
// the ordered configuration entries to publish. Publish order is a contract:
// consumers apply fragments in sequence and later entries override earlier
// ones.
type Manifest struct {
	Copies  []CopyOperation
	Publish []ManifestEntry
}

// PublishPaths returns the published paths in publish order.
func (m Manifest) PublishPaths() []string {
	paths := make([]string, len(m.Publish))
	for i, entry := range m.Publish {
		paths[i] = entry.Path
	}
	return paths
}
