package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.libhal.dev/halpack/internal/app"
	"go.libhal.dev/halpack/internal/ui/style"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [source-root]",
		Short: "Show the package identity and effective options",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("option")
			overrides, err := parseOptions(pairs)
			if err != nil {
				return err
			}

			report, err := c.app.Info(app.InfoOptions{
				SourceRoot: sourceRootArg(args),
				Overrides:  overrides,
			})
			if err != nil {
				return err
			}

			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringArrayP("option", "o", nil, "Override a package option (name=value)")
	return cmd
}

// renderReport writes the resolved package view, styled for the destination
// writer. Styles degrade to plain text when the writer is not a terminal.
func renderReport(w io.Writer, report app.Report) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(style.Iris)
	label := r.NewStyle().Foreground(style.Slate)
	on := r.NewStyle().Foreground(style.Green)
	off := r.NewStyle().Foreground(style.Red)

	desc := report.Descriptor
	fmt.Fprintln(w, title.Render(desc.Ref()))
	fmt.Fprintf(w, "  %s %s\n", label.Render("description:"), desc.Description)
	fmt.Fprintf(w, "  %s %s\n", label.Render("license:"), desc.License)
	fmt.Fprintf(w, "  %s %s\n", label.Render("homepage:"), desc.Homepage)
	fmt.Fprintf(w, "  %s %s\n", label.Render("topics:"), strings.Join(desc.Topics, ", "))

	fmt.Fprintln(w, title.Render("options"))
	for _, name := range slices.Sorted(maps.Keys(report.Options)) {
		marker := off.Render(style.Cross)
		if report.Options[name] {
			marker = on.Render(style.Check)
		}
		fmt.Fprintf(w, "  %s %s\n", marker, name)
	}

	fmt.Fprintln(w, title.Render("publish order"))
	for i, name := range report.Publish {
		fmt.Fprintf(w, "  %d. %s\n", i+1, name)
	}

	if report.LastRun != nil {
		fmt.Fprintln(w, title.Render("last packaged"))
		fmt.Fprintf(w, "  %s %s\n", label.Render("digest:"), report.LastRun.Digest)
		fmt.Fprintf(w, "  %s %s\n", label.Render("at:"), report.LastRun.PackagedAt.Format(time.RFC3339))
	}
}
