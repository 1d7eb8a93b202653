package report

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/tui"
)

// EditCmd returns the report edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a report's layout interactively",
		Long: `Open the interactive layout editor. Press ? inside the editor for keys.

With the daemon running, changes made by other editors show up live.`,
		RunE: runEdit,
	}

	addIDFlag(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "id")
		if err != nil {
			return f.Fail(err)
		}

		// Fail before taking over the terminal
		if _, err := c.App.ReportService.GetReportByID(ctx, reportID); err != nil {
			return f.Fail(err)
		}

		if err := tui.Run(ctx, c.App, c.Config, reportID); err != nil {
			return f.Fail(err)
		}
		return nil
	})
}
