package ports

// Hasher defines the interface for computing the package payload digest.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// DigestTree computes the content digest of every regular file below
	// root. The digest depends only on relative paths and file contents.
	DigestTree(root string) (string, error)
}
