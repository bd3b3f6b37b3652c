// Package config provides the packaging profile loader for halpack.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProfileLoader using a YAML file.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a new Loader reading through the given filesystem.
func NewLoader(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads the packaging profile from the source root.
// A checkout without a profile file is valid, every setting then keeps
// its default.
func (l *Loader) Load(sourceRoot string) (domain.Profile, error) {
	path := filepath.Join(sourceRoot, domain.ProfileFileName)

	raw, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Profile{}, nil
		}
		return domain.Profile{}, zerr.Wrap(err, domain.ErrProfileReadFailed.Error())
	}

	var file ProfileFile
	if parseErr := yaml.Unmarshal(raw, &file); parseErr != nil {
		return domain.Profile{}, zerr.Wrap(parseErr, domain.ErrProfileParseFailed.Error())
	}

	return domain.Profile{
		Options:    file.Options,
		PackageDir: file.PackageDir,
	}, nil
}
