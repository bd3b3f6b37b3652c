// Package manifest resolves the copy set and publish list of a packaging run.
package manifest

import (
	"path/filepath"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.libhal.dev/halpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// copyRules is the fixed copy set of the bundle. The license lands in a
// dedicated directory; everything else mirrors its path under the source root.
var copyRules = []domain.CopyRule{
	{Pattern: domain.LicenseFileName, Dest: domain.LicensesDirName, Required: true},
	{Pattern: filepath.Join(domain.CMakeDirName, "*.cmake")},
	{Pattern: filepath.Join(domain.CMakeDirName, "*.conf")},
}

// Resolver expands the copy rules against a source tree and derives the
// ordered publish list from the resolved options.
type Resolver struct {
	source ports.SourceResolver
}

// NewResolver creates a new Resolver with the given source resolver.
func NewResolver(source ports.SourceResolver) *Resolver {
	return &Resolver{source: source}
}

// Resolve produces the manifest for one packaging run. Required files are
// checked before any rule expands, so a missing license fails the run without
// a partial manifest.
func (r *Resolver) Resolve(sourceRoot, packageRoot string, opts domain.ResolvedOptions) (domain.Manifest, error) {
	if err := r.checkRequired(sourceRoot); err != nil {
		return domain.Manifest{}, err
	}

	copies, err := r.resolveCopies(sourceRoot)
	if err != nil {
		return domain.Manifest{}, err
	}

	return domain.Manifest{
		Copies:  copies,
		Publish: resolvePublish(packageRoot, opts),
	}, nil
}

func (r *Resolver) checkRequired(sourceRoot string) error {
	for _, rule := range copyRules {
		if !rule.Required {
			continue
		}

		ok, err := r.source.Exists(sourceRoot, rule.Pattern)
		if err != nil {
			return err
		}
		if !ok {
			return zerr.With(domain.ErrMissingSource, "path", rule.Pattern)
		}
	}
	return nil
}

func (r *Resolver) resolveCopies(sourceRoot string) ([]domain.CopyOperation, error) {
	var copies []domain.CopyOperation
	for _, rule := range copyRules {
		matches, err := r.source.Glob(sourceRoot, rule.Pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			copies = append(copies, domain.CopyOperation{
				Source: match,
				Dest:   destFor(rule, match),
			})
		}
	}
	return copies, nil
}

// destFor mirrors the source's relative path unless the rule redirects into a
// dedicated directory.
func destFor(rule domain.CopyRule, source string) string {
	if rule.Dest == "" {
		return source
	}
	return filepath.Join(rule.Dest, filepath.Base(source))
}

// PublishOrder returns the fragment names published for the given options, in
// publish order. Order is a contract: optional fragments come first so the
// core build fragment applies last.
func PublishOrder(opts domain.ResolvedOptions) []string {
	var names []string
	if opts.Enabled(domain.OptionAddBuildOutputs) {
		names = append(names, domain.FragmentBuildOutputs)
	}
	if opts.Enabled(domain.OptionOptimizeDebugBuild) {
		names = append(names, domain.FragmentOptimizeDebug)
	}
	return append(names, domain.FragmentColors, domain.FragmentBuild)
}

// resolvePublish anchors the publish order inside the package root.
func resolvePublish(packageRoot string, opts domain.ResolvedOptions) []domain.ManifestEntry {
	names := PublishOrder(opts)
	entries := make([]domain.ManifestEntry, len(names))
	for i, name := range names {
		entries[i] = domain.ManifestEntry{
			Path: domain.FragmentPath(packageRoot, name),
			Role: domain.RoleToolchainFragment,
		}
	}
	return entries
}
