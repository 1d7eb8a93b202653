package report

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
)

// confirmDelete asks before a report is deleted; tests swap it out
var confirmDelete = func(title string, containers int) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete report '%s'?", title)).
		Description(fmt.Sprintf("Its %d containers will be deleted too.", containers)).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return confirmed, err
}

// DeleteCmd returns the report delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a report",
		Long:  "Delete a report and its layout (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	addIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "id")
		if err != nil {
			return f.Fail(err)
		}

		// Get report details for confirmation
		layout, err := c.App.LayoutService.GetLayout(ctx, reportID)
		if err != nil {
			return f.Fail(err)
		}

		// Ask for confirmation unless force or quiet mode
		if !force && !f.Quiet {
			ok, err := confirmDelete(layout.Report.Title, len(layout.Containers))
			if err != nil {
				return f.Fail(fmt.Errorf("confirmation: %w", err))
			}
			if !ok {
				f.Printf("Cancelled\n")
				return nil
			}
		}

		if err := c.App.ReportService.DeleteReport(ctx, reportID); err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return f.JSONSuccess(map[string]any{"report_id": reportID})
		}

		f.Printf("✓ Report %d deleted successfully\n", reportID)
		return nil
	})
}
