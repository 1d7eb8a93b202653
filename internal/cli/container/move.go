package container

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/grid"
	"github.com/thenoetrevino/reportgrid/internal/render"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
)

// MoveCmd returns the container move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a container next to another one",
		Long: `Move a container beside a target container, possibly into another row.
The target row must have room for the container's width.

Examples:
  reportgrid container move 1c0ffee5 --before=9a8b7c6d
  reportgrid container move 1c0ffee5 --after=9a8b7c6d
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("before", "", "Place left of this container")
	cmd.Flags().String("after", "", "Place right of this container")
	cmd.MarkFlagsMutuallyExclusive("before", "after")
	cmd.MarkFlagsOneRequired("before", "after")
	addLayoutFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	before, _ := cmd.Flags().GetString("before")
	after, _ := cmd.Flags().GetString("after")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "report")
		if err != nil {
			return f.Fail(err)
		}

		placement, targetRef, where := grid.Before, before, "before"
		if after != "" {
			placement, targetRef, where = grid.After, after, "after"
		}
		if targetRef == "" {
			return f.Fail(cli.Usagef("one of --before or --after is required"))
		}

		ids, err := loadAndResolve(ctx, c, reportID, args[0], targetRef)
		if err != nil {
			return f.Fail(err)
		}
		if ids[0] == ids[1] {
			return f.Fail(cli.Usagef("cannot move a container next to itself"))
		}

		layout, err := c.App.LayoutService.Move(ctx, layoutservice.MoveRequest{
			ReportID:    reportID,
			ContainerID: ids[0],
			TargetID:    ids[1],
			Placement:   placement,
		})
		if err != nil {
			return f.Fail(err)
		}
		return printLayout(c, f, layout, ids[0],
			fmt.Sprintf("Moved container %s %s %s", render.ShortID(ids[0]), where, render.ShortID(ids[1])))
	})
}
