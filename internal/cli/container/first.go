package container

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/render"
)

// FirstCmd returns the container first subcommand
func FirstCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "first",
		Short: "Add the first container to an empty report",
		Long: `Place a single full-width container on a report that has none.

Examples:
  reportgrid container first --report=3
  ID=$(reportgrid container first --report=3 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runFirst,
	}

	addLayoutFlags(cmd)

	return cmd
}

func runFirst(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "report")
		if err != nil {
			return f.Fail(err)
		}

		layout, id, err := c.App.LayoutService.AddFirst(ctx, reportID)
		if err != nil {
			return f.Fail(err)
		}
		return printLayout(c, f, layout, id, fmt.Sprintf("Added container %s", render.ShortID(id)))
	})
}
