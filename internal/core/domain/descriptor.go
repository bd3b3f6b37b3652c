package domain

import (
	"go.trai.ch/zerr"
)

// Package identity of the libhal CMake utility bundle. The values mirror the
// published recipe and never change at runtime.
const (
	// PackageName is the canonical package name.
	PackageName = "libhal-cmake-util"

	// PackageVersion is the published version of the bundle.
	PackageVersion = "3.0.1"

	// PackageLicense is the SPDX identifier of the bundle license.
	PackageLicense = "Apache-2.0"

	// PackageHomepage is the upstream project page.
	PackageHomepage = "https://libhal.github.io/libhal-armcortex"

	// PackageDescription is the one-line registry description.
	PackageDescription = "A collection of CMake scripts for ARM Cortex builds"
)

// PackageTopics classify the bundle in registry listings.
var PackageTopics = []string{"cmake", "libhal", "embedded", "embedded-systems", "firmware"}

// Option names understood by the recipe.
const (
	// OptionAddBuildOutputs toggles publishing of the build-outputs fragment.
	OptionAddBuildOutputs = "add_build_outputs"

	// OptionOptimizeDebugBuild toggles publishing of the debug-optimization fragment.
	OptionOptimizeDebugBuild = "optimize_debug_build"
)

// OptionSpec describes a single boolean option of the recipe.
type OptionSpec struct {
	// Default is the value used when the caller supplies no override.
	Default bool
}

// OptionSchema maps option names to their OptionSpec.
type OptionSchema map[string]OptionSpec

// Descriptor is the static identity of the package plus its option schema.
// Descriptors are immutable after construction.
type Descriptor struct {
	Name        string
	Version     string
	License     string
	Homepage    string
	Description string
	Topics      []string
	Options     OptionSchema
}

// NewDescriptor returns the descriptor of the libhal CMake utility bundle.
func NewDescriptor() Descriptor {
	return Descriptor{
		Name:        PackageName,
		Version:     PackageVersion,
		License:     PackageLicense,
		Homepage:    PackageHomepage,
		Description: PackageDescription,
		Topics:      PackageTopics,
		Options: OptionSchema{
			OptionAddBuildOutputs:    {Default: true},
			OptionOptimizeDebugBuild: {Default: true},
		},
	}
}

// Ref returns the name/version reference of the package.
func (d Descriptor) Ref() string {
	return d.Name + "/" + d.Version
}

// ResolveOptions overlays caller-supplied overrides onto the schema defaults.
// Every override key must exist in the schema; an unknown key fails with
// ErrUnknownOption and no partial result. The returned mapping carries exactly
// the schema's keys and is fresh on every call.
func (d Descriptor) ResolveOptions(overrides map[string]bool) (ResolvedOptions, error) {
	for name := range overrides {
		if _, ok := d.Options[name]; !ok {
			return nil, zerr.With(ErrUnknownOption, "option", name)
		}
	}

	resolved := make(ResolvedOptions, len(d.Options))
	for name, spec := range d.Options {
		resolved[name] = spec.Default
	}
	for name, value := range overrides {
		resolved[name] = value
	}

	return resolved, nil
}
