package report

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	reportservice "github.com/thenoetrevino/reportgrid/internal/services/report"
)

// CreateCmd returns the report create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new report",
		Long: `Create a new, empty report.

Examples:
  # Simple report (human-readable output)
  reportgrid report create --title="Weekly sales"

  # JSON output for agents
  reportgrid report create --title="Weekly sales" --json

  # Quiet mode for bash capture
  REPORT_ID=$(reportgrid report create --title="Weekly sales" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Report title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Report description (markdown)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		report, err := c.App.ReportService.CreateReport(ctx, reportservice.CreateReportRequest{
			Title:       title,
			Description: description,
		})
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

		f.Printf("✓ Report '%s' created successfully (ID: %d)\n", report.Title, report.ID)
		if report.Description != "" {
			f.Printf("  Description: %s\n", report.Description)
		}
		return nil
	})
}
