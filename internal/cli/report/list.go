package report

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/cli/styles"
)

// ListCmd returns the report list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all reports",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reports, err := c.App.ReportService.ListReports(ctx)
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			for _, r := range reports {
				f.Println(r.ID)
			}
			return nil
		}
		if f.JSON {
			list := make([]map[string]any, len(reports))
			for i, r := range reports {
				list[i] = reportFields(r)
			}
			return f.JSONSuccess(map[string]any{"reports": list})
		}

		if len(reports) == 0 {
			f.Printf("No reports found\n")
			return nil
		}

		f.Printf("Found %d reports:\n\n", len(reports))
		for _, r := range reports {
			f.Printf("  [%d] %s %s\n", r.ID, styles.TitleStyle.Render(r.Title),
				styles.SubtitleStyle.Render(fmt.Sprintf("v%d", r.Version)))
		}
		return nil
	})
}
