package container

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/render"
)

// RemoveCmd returns the container remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a container",
		Long: `Remove a container. Every other container keeps its row and column,
so removing a row's last container leaves an empty row behind.`,
		Args: cobra.ExactArgs(1),
		RunE: runRemove,
	}

	addLayoutFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "report")
		if err != nil {
			return f.Fail(err)
		}

		ids, err := loadAndResolve(ctx, c, reportID, args[0])
		if err != nil {
			return f.Fail(err)
		}

		layout, err := c.App.LayoutService.Remove(ctx, reportID, ids[0])
		if err != nil {
			return f.Fail(err)
		}
		return printLayout(c, f, layout, ids[0], fmt.Sprintf("Removed container %s", render.ShortID(ids[0])))
	})
}
