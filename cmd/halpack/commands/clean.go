package commands

import (
	"github.com/spf13/cobra"
	"go.libhal.dev/halpack/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [source-root]",
		Short: "Remove packaging outputs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := cmd.Flags().GetBool("store")
			all, _ := cmd.Flags().GetBool("all")
			packageDir, _ := cmd.Flags().GetString("package-dir")

			opts := app.CleanOptions{
				SourceRoot: sourceRootArg(args),
				PackageDir: packageDir,
			}

			switch {
			case all:
				opts.Package = true
				opts.Store = true
			case store:
				opts.Store = true
			default:
				// Default behavior: remove the package directory
				opts.Package = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("store", "s", false, "Remove the packaging record store")
	cmd.Flags().BoolP("all", "a", false, "Remove the package directory and the record store")
	cmd.Flags().StringP("package-dir", "p", "", `Package output directory (default "dist")`)

	return cmd
}
