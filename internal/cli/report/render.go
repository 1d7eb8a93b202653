package report

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/render"
)

// RenderCmd returns the report render subcommand
func RenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a report's grid in the terminal",
		Long: `Draw a report's grid as bordered boxes, one line of boxes per row.

Examples:
  reportgrid report render --id=3
  reportgrid report render --id=3 --cell-width=4 --select=1c0ffee5-...
`,
		RunE: runRender,
	}

	addIDFlag(cmd)
	cmd.Flags().Int("cell-width", 0, "Terminal columns per grid unit (default from config)")
	cmd.Flags().String("select", "", "Highlight this container")
	cmd.Flags().Bool("span", false, "Show how many of the 12 columns each row uses")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cellWidth, _ := cmd.Flags().GetInt("cell-width")
	selected, _ := cmd.Flags().GetString("select")
	showSpan, _ := cmd.Flags().GetBool("span")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "id")
		if err != nil {
			return f.Fail(err)
		}
		if cellWidth <= 0 {
			cellWidth = c.Config.Render.CellWidth
		}

		layout, err := c.App.LayoutService.GetLayout(ctx, reportID)
		if err != nil {
			return f.Fail(err)
		}

		styles := render.NewStyles(c.Config.ColorScheme)
		f.Printf("%s\n\n%s\n", render.Header(layout.Report, &styles), render.Grid(layout, render.Options{
			CellWidth: cellWidth,
			Selected:  selected,
			ShowSpan:  showSpan,
			Styles:    &styles,
		}))
		return nil
	})
}
