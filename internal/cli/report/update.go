package report

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	reportservice "github.com/thenoetrevino/reportgrid/internal/services/report"
)

// UpdateCmd returns the report update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a report's title or description",
		Long: `Update a report's title and/or description.

Examples:
  reportgrid report update --id=3 --title="Monthly sales"
  reportgrid report update --id=3 --description="Numbers for **Q3**"
`,
		RunE: runUpdate,
	}

	addIDFlag(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "id")
		if err != nil {
			return f.Fail(err)
		}

		// At least one update field must be provided
		titleFlag := cmd.Flags().Lookup("title")
		descFlag := cmd.Flags().Lookup("description")
		if !titleFlag.Changed && !descFlag.Changed {
			return f.Fail(cli.Usagef("at least one of --title or --description must be specified"))
		}

		req := reportservice.UpdateReportRequest{ID: reportID}
		if titleFlag.Changed {
			title := titleFlag.Value.String()
			req.Title = &title
		}
		if descFlag.Changed {
			description := descFlag.Value.String()
			req.Description = &description
		}

		report, err := c.App.ReportService.UpdateReport(ctx, req)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			f.Println(report.ID)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess(map[string]any{"report": reportFields(report)})
		}

		f.Printf("✓ Report %d updated successfully\n", report.ID)
		return nil
	})
}
