package container

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/models"
	"github.com/thenoetrevino/reportgrid/internal/render"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
)

// ContentCmd returns the container content subcommand
func ContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content <id>",
		Short: "Set what a container displays",
		Long: `Set a container's content type and/or content. Unchanged parts are kept.

Content types: heading, text, image, url, kpi, bar_chart, timeline_chart

Examples:
  reportgrid container content 1c0ffee5 --type=heading --content="Q3 sales"
  reportgrid container content 1c0ffee5 --content-file=notes.md
`,
		Args: cobra.ExactArgs(1),
		RunE: runContent,
	}

	cmd.Flags().String("type", "", "Content type")
	cmd.Flags().String("content", "", "Content text")
	cmd.Flags().String("content-file", "", "Read content from a file")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
	addLayoutFlags(cmd)

	return cmd
}

func runContent(cmd *cobra.Command, args []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	contentFile, _ := cmd.Flags().GetString("content-file")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "report")
		if err != nil {
			return f.Fail(err)
		}
		if !cmd.Flags().Changed("type") && !cmd.Flags().Changed("content") && contentFile == "" {
			return f.Fail(cli.Usagef("at least one of --type, --content or --content-file must be specified"))
		}

		layout, err := c.App.LayoutService.GetLayout(ctx, reportID)
		if err != nil {
			return f.Fail(err)
		}
		id, err := resolveID(layout, args[0])
		if err != nil {
			return f.Fail(err)
		}
		current := layout.Find(id)

		req := layoutservice.SetContentRequest{
			ReportID:    reportID,
			ContainerID: id,
			ContentType: current.ContentType,
			Content:     current.Content,
		}
		if cmd.Flags().Changed("type") {
			if req.ContentType, err = models.ParseContentType(typeFlag); err != nil {
				return f.Fail(cli.Invalid(err))
			}
		}
		switch {
		case contentFile != "":
			data, err := os.ReadFile(contentFile)
			if err != nil {
				return f.Fail(fmt.Errorf("reading content: %w", err))
			}
			req.Content = string(data)
		case cmd.Flags().Changed("content"):
			req.Content, _ = cmd.Flags().GetString("content")
		}

		updated, err := c.App.LayoutService.SetContent(ctx, req)
		if err != nil {
			return f.Fail(err)
		}
		return printLayout(c, f, updated, id,
			fmt.Sprintf("Container %s now shows %s", render.ShortID(id), req.ContentType.Label()))
	})
}
