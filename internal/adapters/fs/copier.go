package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.libhal.dev/halpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageWriter = (*Copier)(nil)

// Copier implements the PackageWriter interface using the os package.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Apply executes the copy operations against the package root. Destination
// directories are created as needed and existing files are truncated, so
// applying the same operations again converges on the same tree.
func (c *Copier) Apply(ctx context.Context, sourceRoot, packageRoot string, ops []domain.CopyOperation) error {
	progress, hasProgress := ports.VertexFromContext(ctx)

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}

		src := filepath.Join(sourceRoot, op.Source)
		dst := filepath.Join(packageRoot, op.Dest)

		if err := c.copyFile(src, dst); err != nil {
			return zerr.With(err, "source", op.Source)
		}

		if hasProgress {
			_, _ = fmt.Fprintf(progress, "%s => %s\n", op.Source, op.Dest)
		}
	}

	return nil
}

func (c *Copier) copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrPackageDirCreateFailed.Error())
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, domain.ErrCopyFailed.Error())
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, domain.ErrCopyFailed.Error())
	}

	if _, copyErr := io.Copy(out, in); copyErr != nil {
		_ = out.Close()
		return zerr.Wrap(copyErr, domain.ErrCopyFailed.Error())
	}

	if closeErr := out.Close(); closeErr != nil {
		return zerr.Wrap(closeErr, domain.ErrCopyFailed.Error())
	}

	return nil
}
