// Package toolchain publishes the consumer-facing package info document.
package toolchain

import (
	"os"
	"path/filepath"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.libhal.dev/halpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Publisher = (*Publisher)(nil)

// PackageInfo represents the structure of the package-info.yaml document.
type PackageInfo struct {
	Name    string      `yaml:"name"`
	Version string      `yaml:"version"`
	License string      `yaml:"license"`
	Conf    []ConfEntry `yaml:"conf"`
}

// ConfEntry is a single append onto a consumer configuration list.
type ConfEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Publisher implements ports.Publisher by writing package-info.yaml.
type Publisher struct{}

// NewPublisher creates a new Publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish renders the entries into package-info.yaml at the package root.
// Entry order is preserved verbatim; consumers apply conf values in sequence,
// so reordering here would change consumer toolchains.
func (p *Publisher) Publish(packageRoot string, desc domain.Descriptor, entries []domain.ManifestEntry) error {
	info := PackageInfo{
		Name:    desc.Name,
		Version: desc.Version,
		License: desc.License,
		Conf:    make([]ConfEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		info.Conf = append(info.Conf, ConfEntry{
			Key:   confKey(entry.Role),
			Value: entry.Path,
		})
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPublishFailed.Error())
	}

	if err := os.MkdirAll(packageRoot, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrPackageDirCreateFailed.Error())
	}

	path := filepath.Join(packageRoot, domain.PackageInfoFileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrPublishFailed.Error())
	}

	return nil
}

// confKey maps an entry role to the consumer configuration list it appends to.
func confKey(role domain.Role) string {
	if role == domain.RoleToolchainFragment {
		return domain.ToolchainConfKey
	}
	return string(role)
}
