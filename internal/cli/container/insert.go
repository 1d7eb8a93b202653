package container

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/models"
	"github.com/thenoetrevino/reportgrid/internal/render"
)

// InsertCmd returns the container insert subcommand
func InsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <target-id>",
		Short: "Insert a container next to another one",
		Long: `Insert a new container relative to a target container.

  --before / --after   same row, taking the row's remaining width
  --above  / --below   a new half-width row above or below the target's row

Examples:
  reportgrid container insert 1c0ffee5 --after
  reportgrid container insert 1c0ffee5 --below --report=3 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runInsert,
	}

	cmd.Flags().Bool("before", false, "Insert left of the target")
	cmd.Flags().Bool("after", false, "Insert right of the target")
	cmd.Flags().Bool("above", false, "Insert a new row above the target's row")
	cmd.Flags().Bool("below", false, "Insert a new row below the target's row")
	cmd.MarkFlagsMutuallyExclusive("before", "after", "above", "below")
	cmd.MarkFlagsOneRequired("before", "after", "above", "below")

	addLayoutFlags(cmd)

	return cmd
}

type insertFunc func(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error)

func runInsert(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "report")
		if err != nil {
			return f.Fail(err)
		}

		ids, err := loadAndResolve(ctx, c, reportID, args[0])
		if err != nil {
			return f.Fail(err)
		}
		target := ids[0]

		svc := c.App.LayoutService
		var (
			insert insertFunc
			where  string
		)
		switch {
		case flagSet(cmd, "before"):
			insert, where = svc.InsertBefore, "before"
		case flagSet(cmd, "after"):
			insert, where = svc.InsertAfter, "after"
		case flagSet(cmd, "above"):
			insert, where = svc.InsertRowAbove, "in a new row above"
		case flagSet(cmd, "below"):
			insert, where = svc.InsertRowBelow, "in a new row below"
		default:
			return f.Fail(cli.Usagef("one of --before, --after, --above or --below is required"))
		}

		layout, id, err := insert(ctx, reportID, target)
		if err != nil {
			return f.Fail(err)
		}
		return printLayout(c, f, layout, id,
			fmt.Sprintf("Inserted container %s %s %s", render.ShortID(id), where, render.ShortID(target)))
	})
}

func flagSet(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
