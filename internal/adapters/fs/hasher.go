package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.libhal.dev/halpack/internal/core/domain"
	"go.libhal.dev/halpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes payload digests for package trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// DigestTree computes a single digest over every file under root. File
// contents are hashed concurrently, then the per-file hashes are folded
// into the digest in sorted path order so the result is stable. Paths are
// folded in slash form to keep digests portable across platforms.
func (h *Hasher) DigestTree(root string) (string, error) {
	var files []string
	for path := range h.walker.WalkFiles(root) {
		files = append(files, path)
	}
	sort.Strings(files)

	hashes := make([]uint64, len(files))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			hash, err := h.ComputeFileHash(path)
			if err != nil {
				return err
			}
			hashes[i] = hash
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", zerr.Wrap(err, domain.ErrDigestFailed.Error())
	}

	digest := xxhash.New()
	for i, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrDigestFailed.Error())
		}

		_, _ = digest.WriteString(filepath.ToSlash(rel))
		_, _ = digest.Write([]byte{0})

		if err := binary.Write(digest, binary.LittleEndian, hashes[i]); err != nil {
			return "", zerr.Wrap(err, domain.ErrDigestFailed.Error())
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
