package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.libhal.dev/halpack/cmd/halpack/commands"
	"go.libhal.dev/halpack/internal/app"
	"go.libhal.dev/halpack/internal/build"
	"go.libhal.dev/halpack/internal/core/domain"
)

type mockApp struct {
	packageFunc func(ctx context.Context, opts app.PackageOptions) error
	infoFunc    func(opts app.InfoOptions) (app.Report, error)
	cleanFunc   func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Package(ctx context.Context, opts app.PackageOptions) error {
	if m.packageFunc != nil {
		return m.packageFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Info(opts app.InfoOptions) (app.Report, error) {
	if m.infoFunc != nil {
		return m.infoFunc(opts)
	}
	return app.Report{}, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Package(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.PackageOptions
		called := false

		mock := &mockApp{
			packageFunc: func(_ context.Context, opts app.PackageOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"package", "checkout",
			"-o", "add_build_outputs=false",
			"--package-dir", "out",
			"--dry-run",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "checkout", captured.SourceRoot)
		assert.Equal(t, "out", captured.PackageDir)
		assert.True(t, captured.DryRun)
		assert.Equal(t, map[string]bool{"add_build_outputs": false}, captured.Overrides)
	})

	t.Run("defaults to the current directory", func(t *testing.T) {
		var captured app.PackageOptions
		mock := &mockApp{
			packageFunc: func(_ context.Context, opts app.PackageOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"package"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ".", captured.SourceRoot)
		assert.Empty(t, captured.PackageDir)
		assert.False(t, captured.DryRun)
	})

	t.Run("rejects option without value", func(t *testing.T) {
		mock := &mockApp{
			packageFunc: func(_ context.Context, _ app.PackageOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"package", "-o", "add_build_outputs"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidOptionValue)
	})

	t.Run("rejects non-boolean value", func(t *testing.T) {
		mock := &mockApp{
			packageFunc: func(_ context.Context, _ app.PackageOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"package", "-o", "add_build_outputs=maybe"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidOptionValue)
	})

	t.Run("returns error on package failure", func(t *testing.T) {
		mock := &mockApp{
			packageFunc: func(_ context.Context, _ app.PackageOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"package"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Info(t *testing.T) {
	t.Run("renders the report", func(t *testing.T) {
		mock := &mockApp{
			infoFunc: func(_ app.InfoOptions) (app.Report, error) {
				return app.Report{
					Descriptor: domain.NewDescriptor(),
					Options: domain.ResolvedOptions{
						"add_build_outputs":    true,
						"optimize_debug_build": false,
					},
					Publish: []string{"build_outputs.cmake", "colors.cmake", "build.cmake"},
					LastRun: &domain.BuildRecord{
						Digest:     "00c376ddcbd95ad1",
						PackagedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"info"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "libhal-cmake-util/3.0.1")
		assert.Contains(t, out, "license: Apache-2.0")
		assert.Contains(t, out, "✓ add_build_outputs")
		assert.Contains(t, out, "✗ optimize_debug_build")
		assert.Contains(t, out, "1. build_outputs.cmake")
		assert.Contains(t, out, "3. build.cmake")
		assert.Contains(t, out, "digest: 00c376ddcbd95ad1")
		assert.Contains(t, out, "at: 2025-03-14T10:30:00Z")
	})

	t.Run("omits last run when never packaged", func(t *testing.T) {
		mock := &mockApp{
			infoFunc: func(_ app.InfoOptions) (app.Report, error) {
				return app.Report{
					Descriptor: domain.NewDescriptor(),
					Options:    domain.ResolvedOptions{},
					Publish:    []string{"colors.cmake", "build.cmake"},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"info"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "last packaged")
	})

	t.Run("wires option overrides", func(t *testing.T) {
		var captured app.InfoOptions
		mock := &mockApp{
			infoFunc: func(opts app.InfoOptions) (app.Report, error) {
				captured = opts
				return app.Report{Descriptor: domain.NewDescriptor()}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"info", "checkout", "-o", "optimize_debug_build=0"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "checkout", captured.SourceRoot)
		assert.Equal(t, map[string]bool{"optimize_debug_build": false}, captured.Overrides)
	})
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPackage bool
		wantStore   bool
	}{
		{name: "default removes package directory", args: []string{"clean"}, wantPackage: true},
		{name: "store flag removes only the store", args: []string{"clean", "--store"}, wantStore: true},
		{name: "all removes both", args: []string{"clean", "--all"}, wantPackage: true, wantStore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			err := cli.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantPackage, captured.Package)
			assert.Equal(t, tt.wantStore, captured.Store)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		cli := commands.New(&mockApp{})

		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"version"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), build.Version)
	})

	t.Run("flag", func(t *testing.T) {
		cli := commands.New(&mockApp{})

		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"--version"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "halpack version "+build.Version)
		assert.Contains(t, buf.String(), "commit:")
	})
}
