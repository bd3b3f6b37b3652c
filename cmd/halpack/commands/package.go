package commands

import (
	"github.com/spf13/cobra"
	"go.libhal.dev/halpack/internal/app"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package [source-root]",
		Short: "Assemble the CMake utility package from a checkout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("option")
			overrides, err := parseOptions(pairs)
			if err != nil {
				return err
			}

			packageDir, _ := cmd.Flags().GetString("package-dir")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return c.app.Package(cmd.Context(), app.PackageOptions{
				SourceRoot: sourceRootArg(args),
				PackageDir: packageDir,
				Overrides:  overrides,
				DryRun:     dryRun,
			})
		},
	}

	cmd.Flags().StringArrayP("option", "o", nil, "Override a package option (name=value)")
	cmd.Flags().StringP("package-dir", "p", "", `Package output directory (default "dist")`)
	cmd.Flags().Bool("dry-run", false, "Resolve and report the manifest without writing")
	return cmd
}
