package manifest_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.libhal.dev/halpack/internal/core/domain"
	"go.libhal.dev/halpack/internal/core/ports/mocks"
	"go.libhal.dev/halpack/internal/engine/manifest"
	"go.uber.org/mock/gomock"
)

const (
	sourceRoot  = "/checkout"
	packageRoot = "/checkout/dist"
)

// expectFullSource primes the mock with a complete source tree: the license,
// all four fragments, and the lint configuration.
func expectFullSource(source *mocks.MockSourceResolver) {
	source.EXPECT().Exists(sourceRoot, domain.LicenseFileName).Return(true, nil)
	source.EXPECT().Glob(sourceRoot, domain.LicenseFileName).Return([]string{domain.LicenseFileName}, nil)
	source.EXPECT().Glob(sourceRoot, filepath.Join(domain.CMakeDirName, "*.cmake")).Return([]string{
		filepath.Join(domain.CMakeDirName, domain.FragmentBuild),
		filepath.Join(domain.CMakeDirName, domain.FragmentBuildOutputs),
		filepath.Join(domain.CMakeDirName, domain.FragmentColors),
		filepath.Join(domain.CMakeDirName, domain.FragmentOptimizeDebug),
	}, nil)
	source.EXPECT().Glob(sourceRoot, filepath.Join(domain.CMakeDirName, "*.conf")).Return([]string{
		filepath.Join(domain.CMakeDirName, domain.ClangTidyConfName),
	}, nil)
}

func TestResolver_Resolve_Copies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceResolver(ctrl)
	expectFullSource(source)

	r := manifest.NewResolver(source)
	m, err := r.Resolve(sourceRoot, packageRoot, domain.ResolvedOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.CopyOperation{
		{Source: "LICENSE", Dest: filepath.Join("licenses", "LICENSE")},
		{Source: filepath.Join("cmake", "build.cmake"), Dest: filepath.Join("cmake", "build.cmake")},
		{Source: filepath.Join("cmake", "build_outputs.cmake"), Dest: filepath.Join("cmake", "build_outputs.cmake")},
		{Source: filepath.Join("cmake", "colors.cmake"), Dest: filepath.Join("cmake", "colors.cmake")},
		{Source: filepath.Join("cmake", "optimize_debug_build.cmake"), Dest: filepath.Join("cmake", "optimize_debug_build.cmake")},
		{Source: filepath.Join("cmake", "clang-tidy.conf"), Dest: filepath.Join("cmake", "clang-tidy.conf")},
	}, m.Copies)
}

func TestResolver_Resolve_PublishOrderAllEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceResolver(ctrl)
	expectFullSource(source)

	r := manifest.NewResolver(source)
	m, err := r.Resolve(sourceRoot, packageRoot, domain.ResolvedOptions{
		domain.OptionAddBuildOutputs:    true,
		domain.OptionOptimizeDebugBuild: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.ManifestEntry{
		{Path: filepath.Join(packageRoot, "cmake", "build_outputs.cmake"), Role: domain.RoleToolchainFragment},
		{Path: filepath.Join(packageRoot, "cmake", "optimize_debug_build.cmake"), Role: domain.RoleToolchainFragment},
		{Path: filepath.Join(packageRoot, "cmake", "colors.cmake"), Role: domain.RoleToolchainFragment},
		{Path: filepath.Join(packageRoot, "cmake", "build.cmake"), Role: domain.RoleToolchainFragment},
	}, m.Publish)
}

func TestResolver_Resolve_PublishOrderAllDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceResolver(ctrl)
	expectFullSource(source)

	r := manifest.NewResolver(source)
	m, err := r.Resolve(sourceRoot, packageRoot, domain.ResolvedOptions{
		domain.OptionAddBuildOutputs:    false,
		domain.OptionOptimizeDebugBuild: false,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(packageRoot, "cmake", "colors.cmake"),
		filepath.Join(packageRoot, "cmake", "build.cmake"),
	}, m.PublishPaths())
}

func TestResolver_Resolve_MissingLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Glob expectations: the required-file check must fail before any
	// pattern expands.
	source := mocks.NewMockSourceResolver(ctrl)
	source.EXPECT().Exists(sourceRoot, domain.LicenseFileName).Return(false, nil)

	r := manifest.NewResolver(source)
	m, err := r.Resolve(sourceRoot, packageRoot, domain.ResolvedOptions{})
	require.ErrorIs(t, err, domain.ErrMissingSource)
	assert.Empty(t, m.Copies)
	assert.Empty(t, m.Publish)
}

func TestResolver_Resolve_NoLintConf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceResolver(ctrl)
	source.EXPECT().Exists(sourceRoot, domain.LicenseFileName).Return(true, nil)
	source.EXPECT().Glob(sourceRoot, domain.LicenseFileName).Return([]string{domain.LicenseFileName}, nil)
	source.EXPECT().Glob(sourceRoot, filepath.Join(domain.CMakeDirName, "*.cmake")).Return([]string{
		filepath.Join(domain.CMakeDirName, domain.FragmentBuild),
	}, nil)
	source.EXPECT().Glob(sourceRoot, filepath.Join(domain.CMakeDirName, "*.conf")).Return(nil, nil)

	r := manifest.NewResolver(source)
	m, err := r.Resolve(sourceRoot, packageRoot, domain.ResolvedOptions{})
	require.NoError(t, err)

	// A pattern matching nothing is a no-op, not a failure.
	assert.Equal(t, []domain.CopyOperation{
		{Source: "LICENSE", Dest: filepath.Join("licenses", "LICENSE")},
		{Source: filepath.Join("cmake", "build.cmake"), Dest: filepath.Join("cmake", "build.cmake")},
	}, m.Copies)
}

func TestPublishOrder(t *testing.T) {
	tests := []struct {
		name string
		opts domain.ResolvedOptions
		want []string
	}{
		{
			name: "all enabled",
			opts: domain.ResolvedOptions{
				domain.OptionAddBuildOutputs:    true,
				domain.OptionOptimizeDebugBuild: true,
			},
			want: []string{"build_outputs.cmake", "optimize_debug_build.cmake", "colors.cmake", "build.cmake"},
		},
		{
			name: "build outputs only",
			opts: domain.ResolvedOptions{domain.OptionAddBuildOutputs: true},
			want: []string{"build_outputs.cmake", "colors.cmake", "build.cmake"},
		},
		{
			name: "debug optimization only",
			opts: domain.ResolvedOptions{domain.OptionOptimizeDebugBuild: true},
			want: []string{"optimize_debug_build.cmake", "colors.cmake", "build.cmake"},
		},
		{
			name: "all disabled",
			opts: domain.ResolvedOptions{},
			want: []string{"colors.cmake", "build.cmake"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, manifest.PublishOrder(tt.opts))
		})
	}
}

func TestResolver_Resolve_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanErr := errors.New("permission denied")
	source := mocks.NewMockSourceResolver(ctrl)
	source.EXPECT().Exists(sourceRoot, domain.LicenseFileName).Return(true, nil)
	source.EXPECT().Glob(sourceRoot, domain.LicenseFileName).Return(nil, scanErr)

	r := manifest.NewResolver(source)
	_, err := r.Resolve(sourceRoot, packageRoot, domain.ResolvedOptions{})
	require.ErrorIs(t, err, scanErr)
}

func TestResolver_Resolve_ExistsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statErr := errors.New("stat failed")
	source := mocks.NewMockSourceResolver(ctrl)
	source.EXPECT().Exists(sourceRoot, domain.LicenseFileName).Return(false, statErr)

	r := manifest.NewResolver(source)
	_, err := r.Resolve(sourceRoot, packageRoot, domain.ResolvedOptions{})
	require.ErrorIs(t, err, statErr)
}
