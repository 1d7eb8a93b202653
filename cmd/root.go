// Package cmd assembles the reportgrid command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli/container"
	"github.com/thenoetrevino/reportgrid/internal/cli/report"
	"github.com/thenoetrevino/reportgrid/internal/cli/tutorial"
	"github.com/thenoetrevino/reportgrid/internal/cli/use"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reportgrid",
		Short: "reportgrid - lay out reports on a 12-column grid",
		Long: `reportgrid manages reports whose body is a grid of containers.

Each row of the grid is 12 columns wide. Containers are inserted, resized
and moved with the 'container' commands or interactively with
'reportgrid report edit'. Run 'reportgrid tutorial' for a walkthrough.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(report.ReportCmd())
	rootCmd.AddCommand(container.ContainerCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
