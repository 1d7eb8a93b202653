package container

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/render"
)

// WidthsCmd returns the container widths subcommand
func WidthsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widths <id>",
		Short: "List the widths a container may be resized to",
		Args:  cobra.ExactArgs(1),
		RunE:  runWidths,
	}

	cli.AddReportFlag(cmd)
	cli.AddOutputFlags(cmd, "Minimal output (one width per line)")

	return cmd
}

func runWidths(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "report")
		if err != nil {
			return f.Fail(err)
		}

		ids, err := loadAndResolve(ctx, c, reportID, args[0])
		if err != nil {
			return f.Fail(err)
		}

		options, err := c.App.LayoutService.WidthOptions(ctx, reportID, ids[0])
		if err != nil {
			return f.Fail(err)
		}

		if f.Quiet {
			for _, w := range options {
				f.Println(w)
			}
			return nil
		}
		if f.JSON {
			return f.JSONSuccess(map[string]any{"container_id": ids[0], "widths": options})
		}

		if len(options) == 0 {
			f.Printf("Container %s cannot be resized: its row has no room\n", render.ShortID(ids[0]))
			return nil
		}
		parts := make([]string, len(options))
		for i, w := range options {
			parts[i] = fmt.Sprint(w)
		}
		f.Printf("Allowed widths for %s: %s\n", render.ShortID(ids[0]), strings.Join(parts, " "))
		return nil
	})
}
