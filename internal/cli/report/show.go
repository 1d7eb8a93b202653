package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/cli/styles"
	"github.com/thenoetrevino/reportgrid/internal/converters"
	"github.com/thenoetrevino/reportgrid/internal/render"
)

// ShowCmd returns the report show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a report with its layout",
		Long: `Show a report's details, its rendered description and a preview of its grid.

Examples:
  reportgrid report show --id=3
  reportgrid report show --id=3 --json
`,
		RunE: runShow,
	}

	addIDFlag(cmd)
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "id")
		if err != nil {
			return f.Fail(err)
		}

		layout, err := c.App.LayoutService.GetLayout(ctx, reportID)
		if err != nil {
			return f.Fail(err)
		}
		report := layout.Report

		if f.Quiet {
			f.Println(report.ID)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess(map[string]any{
				"report": reportFields(report),
				"layout": converters.ToDocument(layout),
			})
		}

		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render(report.Title))
		b.WriteString("\n")
		b.WriteString(styles.RenderField("ID", fmt.Sprintf("%d", report.ID)))
		b.WriteString("\n")
		b.WriteString(styles.RenderField("Version", fmt.Sprintf("%d", report.Version)))
		b.WriteString("\n")
		b.WriteString(styles.RenderField("Containers", fmt.Sprintf("%d", len(layout.Containers))))
		b.WriteString("\n")
		b.WriteString(styles.RenderField("Updated", report.UpdatedAt.Local().Format(time.DateTime)))

		if report.Description != "" {
			b.WriteString("\n")
			b.WriteString(styles.SectionStyle.Render("Description"))
			b.WriteString("\n")
			desc, err := render.Markdown(report.Description, styles.CardWidth-4, "")
			if err != nil {
				// Fall back to the raw text rather than failing the command
				desc = report.Description
			}
			b.WriteString(desc)
		}

		f.Printf("%s\n", styles.RenderCard(b.String()))
		f.Printf("%s\n", styles.SectionStyle.Render("Layout"))
		f.Printf("%s\n", render.Grid(layout, render.Options{
			CellWidth: c.Config.Render.CellWidth,
			ShowSpan:  true,
		}))
		return nil
	})
}
