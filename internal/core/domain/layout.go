package domain

import "path/filepath"

const (
	// LicenseFileName is the name of the license file at the source root.
	LicenseFileName = "LICENSE"

	// LicensesDirName is the package subdirectory receiving the license copy.
	LicensesDirName = "licenses"

	// CMakeDirName is the subdirectory holding the CMake scripts, both at the
	// source root and mirrored in the package.
	CMakeDirName = "cmake"

	// FragmentBuildOutputs prints size and section reports after linking.
	FragmentBuildOutputs = "build_outputs.cmake"

	// FragmentOptimizeDebug raises the optimization level of debug builds.
	FragmentOptimizeDebug = "optimize_debug_build.cmake"

	// FragmentColors forces colored compiler diagnostics.
	FragmentColors = "colors.cmake"

	// FragmentBuild is the core build configuration fragment.
	FragmentBuild = "build.cmake"

	// ClangTidyConfName is the lint configuration carried with the scripts.
	ClangTidyConfName = "clang-tidy.conf"

	// ToolchainConfKey is the consumer configuration list that receives the
	// published fragments, in order.
	ToolchainConfKey = "tools.cmake.cmaketoolchain:user_toolchain"

	// HalpackDirName is the name of the internal metadata directory.
	HalpackDirName = ".halpack"

	// StoreDirName is the name of the packaging record store directory.
	StoreDirName = "store"

	// ProfileFileName is the name of the optional packaging profile file.
	ProfileFileName = "halpack.yaml"

	// PackageInfoFileName is the name of the published package info document.
	PackageInfoFileName = "package-info.yaml"

	// DefaultPackageDirName is the default package output directory.
	DefaultPackageDirName = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the packaging record store.
// It joins .halpack and store.
func DefaultStorePath() string {
	return filepath.Join(HalpackDirName, StoreDirName)
}

// FragmentPath returns the path of a fragment inside the package root.
func FragmentPath(packageRoot, name string) string {
	return filepath.Join(packageRoot, CMakeDirName, name)
}

// ClangTidyConfPath returns the path of the lint configuration inside the
// package root.
func ClangTidyConfPath(packageRoot string) string {
	return filepath.Join(packageRoot, CMakeDirName, ClangTidyConfName)
}
