package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/render"
)

// ResizeCmd returns the container resize subcommand
func ResizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize <id>",
		Short: "Change a container's width",
		Long: `Change a container's width to one of its allowed widths
(see 'reportgrid container widths').

Examples:
  reportgrid container resize 1c0ffee5 --width=4
`,
		Args: cobra.ExactArgs(1),
		RunE: runResize,
	}

	cmd.Flags().Int("width", 0, "New width in grid columns (required)")
	if err := cmd.MarkFlagRequired("width"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	addLayoutFlags(cmd)

	return cmd
}

func runResize(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "report")
		if err != nil {
			return f.Fail(err)
		}

		ids, err := loadAndResolve(ctx, c, reportID, args[0])
		if err != nil {
			return f.Fail(err)
		}

		layout, err := c.App.LayoutService.Resize(ctx, reportID, ids[0], width)
		if err != nil {
			return f.Fail(err)
		}
		return printLayout(c, f, layout, ids[0], fmt.Sprintf("Container %s is now %d wide", render.ShortID(ids[0]), width))
	})
}
