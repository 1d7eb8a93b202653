package report

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/converters"
	reportservice "github.com/thenoetrevino/reportgrid/internal/services/report"
)

// ImportCmd returns the report import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create or relayout a report from a template",
		Long: `Read a layout template (YAML, JSON or HCL, chosen by file extension).

Without --id a new report is created, titled from the template (or --title,
or the file name). With --id the existing report's layout is replaced.

Examples:
  reportgrid report import --file=weekly.hcl
  reportgrid report import --file=weekly.yaml --id=3
  REPORT_ID=$(reportgrid report import --file=weekly.hcl --quiet)
`,
		RunE: runImport,
	}

	cmd.Flags().StringP("file", "f", "", "Template file (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().Int("id", 0, "Replace the layout of this report instead of creating one")
	cmd.Flags().String("title", "", "Title for the new report")
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	titleFlag, _ := cmd.Flags().GetString("title")
	replace := cmd.Flags().Changed("id")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if _, err := converters.ParseFormat(filepath.Ext(path)); err != nil {
			return f.Fail(cli.Usagef("%v", err))
		}
		doc, err := converters.DecodeFile(path)
		if err != nil {
			return f.Fail(err)
		}

		var reportID int
		if replace {
			if reportID, err = cli.GetReportID(cmd, "id"); err != nil {
				return f.Fail(err)
			}
		} else {
			report, err := c.App.ReportService.CreateReport(ctx, reportservice.CreateReportRequest{
				Title:       importTitle(titleFlag, doc.Title, path),
				Description: doc.Description,
			})
			if err != nil {
				return f.Fail(err)
			}
			reportID = report.ID
		}

		layout, err := c.App.LayoutService.ApplyTemplate(ctx, reportID, doc.ToContainers(reportID))
		if err != nil {
			if !replace {
				// Don't leave an empty report behind
				if delErr := c.App.ReportService.DeleteReport(ctx, reportID); delErr != nil {
					err = errors.Join(err, delErr)
				}
			}
			return f.Fail(err)
		}

		if f.Quiet {
			f.Println(reportID)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess(map[string]any{
				"report": reportFields(layout.Report),
				"layout": converters.ToDocument(layout),
			})
		}

		verb := "Created"
		if replace {
			verb = "Updated"
		}
		f.Printf("✓ %s report %d '%s' with %d containers\n", verb, reportID, layout.Report.Title, len(layout.Containers))
		return nil
	})
}

func importTitle(flag, fromDoc, path string) string {
	switch {
	case strings.TrimSpace(flag) != "":
		return flag
	case strings.TrimSpace(fromDoc) != "":
		return fromDoc
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
