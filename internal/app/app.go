// Package app implements the application layer for halpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.libhal.dev/halpack/internal/core/ports"
	"go.libhal.dev/halpack/internal/engine/manifest"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	profiles  ports.ProfileLoader
	resolver  *manifest.Resolver
	writer    ports.PackageWriter
	publisher ports.Publisher
	store     ports.RecordStore
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	profiles ports.ProfileLoader,
	resolver *manifest.Resolver,
	writer ports.PackageWriter,
	publisher ports.Publisher,
	store ports.RecordStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		profiles:  profiles,
		resolver:  resolver,
		writer:    writer,
		publisher: publisher,
		store:     store,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// PackageOptions carries the command-line inputs of one packaging run.
type PackageOptions struct {
	// SourceRoot is the checkout to package from.
	SourceRoot string

	// PackageDir overrides the package output directory. It takes precedence
	// over the profile's directory.
	PackageDir string

	// Overrides are option overrides. They take precedence over the profile's
	// options.
	Overrides map[string]bool

	// DryRun resolves and reports the manifest without touching the
	// filesystem.
	DryRun bool
}

// Package resolves the manifest for the source root, assembles the package,
// publishes the consumer configuration, and records the run.
func (a *App) Package(ctx context.Context, opts PackageOptions) error {
	defer func() { _ = a.telemetry.Close() }()

	// 1. Resolve roots and profile
	sourceRoot, err := filepath.Abs(opts.SourceRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve source root")
	}

	profile, err := a.profiles.Load(sourceRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to load packaging profile")
	}

	packageRoot := resolvePackageRoot(sourceRoot, opts.PackageDir, profile)

	// 2. Resolve effective options
	desc := domain.NewDescriptor()
	resolved, err := desc.ResolveOptions(mergeOptions(profile.Options, opts.Overrides))
	if err != nil {
		return err
	}

	// 3. Resolve the manifest
	_, resolveVtx := a.telemetry.Record(ctx, "resolve manifest")
	m, err := a.resolver.Resolve(sourceRoot, packageRoot, resolved)
	resolveVtx.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve package manifest")
	}

	// 4. Report the resolved configuration
	a.logger.Info(fmt.Sprintf("clang_tidy_config_path: %s", domain.ClangTidyConfPath(packageRoot)))
	a.logger.Info(fmt.Sprintf("%s: %t", domain.OptionAddBuildOutputs, resolved.Enabled(domain.OptionAddBuildOutputs)))
	a.logger.Info(fmt.Sprintf("%s: %t", domain.OptionOptimizeDebugBuild, resolved.Enabled(domain.OptionOptimizeDebugBuild)))

	if opts.DryRun {
		a.reportManifest(m)
		return nil
	}

	// 5. Copy the payload
	copyCtx, copyVtx := a.telemetry.Record(ctx, "package files")
	err = a.writer.Apply(copyCtx, sourceRoot, packageRoot, m.Copies)
	copyVtx.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to assemble package")
	}

	// 6. Digest the payload, publish, and record the run
	digest, err := a.hasher.DigestTree(packageRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to digest package payload")
	}

	if err := a.publisher.Publish(packageRoot, desc, m.Publish); err != nil {
		return zerr.Wrap(err, "failed to publish package configuration")
	}

	files := make([]string, len(m.Copies))
	for i, op := range m.Copies {
		files[i] = filepath.ToSlash(op.Dest)
	}

	rec := domain.BuildRecord{
		Name:       desc.Name,
		Version:    desc.Version,
		Digest:     digest,
		Options:    resolved,
		Files:      files,
		PackagedAt: time.Now().UTC(),
	}
	if err := a.store.Put(sourceRoot, rec); err != nil {
		return zerr.Wrap(err, "failed to record packaging run")
	}

	a.logger.Info(fmt.Sprintf("packaged %s (%d files, digest %s)", desc.Ref(), len(m.Copies), digest))
	return nil
}

// reportManifest logs what a packaging run would do without running it.
func (a *App) reportManifest(m domain.Manifest) {
	for _, op := range m.Copies {
		a.logger.Info(fmt.Sprintf("would copy %s => %s", op.Source, op.Dest))
	}
	for _, entry := range m.Publish {
		a.logger.Info(fmt.Sprintf("would publish %s", entry.Path))
	}
}

// InfoOptions carries the inputs of an info request.
type InfoOptions struct {
	// SourceRoot is the checkout whose profile and records are consulted.
	SourceRoot string

	// Overrides are option overrides applied on top of the profile.
	Overrides map[string]bool
}

// Report is the resolved view of the package for display.
type Report struct {
	Descriptor domain.Descriptor
	Options    domain.ResolvedOptions

	// Publish lists the fragment names in publish order.
	Publish []string

	// LastRun is the record of the most recent packaging run, if any.
	LastRun *domain.BuildRecord
}

// Info resolves the package identity and effective options without touching
// the source tree.
func (a *App) Info(opts InfoOptions) (Report, error) {
	sourceRoot, err := filepath.Abs(opts.SourceRoot)
	if err != nil {
		return Report{}, zerr.Wrap(err, "failed to resolve source root")
	}

	profile, err := a.profiles.Load(sourceRoot)
	if err != nil {
		return Report{}, zerr.Wrap(err, "failed to load packaging profile")
	}

	desc := domain.NewDescriptor()
	resolved, err := desc.ResolveOptions(mergeOptions(profile.Options, opts.Overrides))
	if err != nil {
		return Report{}, err
	}

	rec, err := a.store.Get(sourceRoot, desc.Ref())
	if err != nil {
		return Report{}, zerr.Wrap(err, "failed to read packaging record")
	}

	return Report{
		Descriptor: desc,
		Options:    resolved,
		Publish:    manifest.PublishOrder(resolved),
		LastRun:    rec,
	}, nil
}

// CleanOptions selects what Clean removes.
type CleanOptions struct {
	// SourceRoot is the checkout to clean.
	SourceRoot string

	// PackageDir overrides the package output directory, with the same
	// precedence as packaging.
	PackageDir string

	// Package removes the package output directory.
	Package bool

	// Store removes the packaging record store.
	Store bool
}

// Clean removes packaging outputs based on the provided options.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	sourceRoot, err := filepath.Abs(opts.SourceRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve source root")
	}

	profile, err := a.profiles.Load(sourceRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to load packaging profile")
	}

	var errs error

	// Helper to remove a directory and log the action
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if opts.Package {
		remove(resolvePackageRoot(sourceRoot, opts.PackageDir, profile), "package directory")
	}

	if opts.Store {
		remove(filepath.Join(sourceRoot, domain.HalpackDirName), "record store")
	}

	return errs
}

// mergeOptions overlays command-line overrides on top of profile options.
func mergeOptions(profile, overrides map[string]bool) map[string]bool {
	merged := make(map[string]bool, len(profile)+len(overrides))
	maps.Copy(merged, profile)
	maps.Copy(merged, overrides)
	return merged
}

// resolvePackageRoot applies the package directory precedence: command-line
// flag, then profile, then the default. Relative directories anchor at the
// source root.
func resolvePackageRoot(sourceRoot, flag string, profile domain.Profile) string {
	dir := flag
	if dir == "" {
		dir = profile.PackageDir
	}
	if dir == "" {
		dir = domain.DefaultPackageDirName
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(sourceRoot, dir)
	}
	return dir
}
