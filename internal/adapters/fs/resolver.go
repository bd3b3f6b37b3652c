package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.libhal.dev/halpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver implements the SourceResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Glob resolves pattern relative to root and returns the matches as sorted
// root-relative paths. Directories are excluded. Zero matches is not an
// error, the pattern then simply selects nothing.
func (r *Resolver) Glob(root, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "pattern", pattern)
	}

	result := make([]string, 0, len(matches))
	for _, match := range matches {
		info, statErr := os.Stat(match)
		if statErr != nil {
			return nil, zerr.With(zerr.Wrap(statErr, domain.ErrSourceScanFailed.Error()), "path", match)
		}
		if info.IsDir() {
			continue
		}

		rel, relErr := filepath.Rel(root, match)
		if relErr != nil {
			return nil, zerr.With(zerr.Wrap(relErr, domain.ErrSourceScanFailed.Error()), "path", match)
		}
		result = append(result, rel)
	}
	sort.Strings(result)

	return result, nil
}

// Exists reports whether path exists under root.
func (r *Resolver) Exists(root, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(root, path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", path)
}
