// Package container holds all cli commands that edit a report's grid
//
// e.g., reportgrid container ...
package container

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/converters"
	"github.com/thenoetrevino/reportgrid/internal/models"
	"github.com/thenoetrevino/reportgrid/internal/render"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
)

// ContainerCmd returns the container parent command
func ContainerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "container",
		Short: "Edit the containers of a report's grid",
		Long: `Insert, remove, resize and move the containers of a report.

Every command works on the report given by --report, or $REPORTGRID_REPORT
(see 'reportgrid use report'). Containers may be referred to by a unique
prefix of their ID, as shown by 'reportgrid report render'.`,
	}

	cmd.AddCommand(FirstCmd())
	cmd.AddCommand(InsertCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ResizeCmd())
	cmd.AddCommand(WidthsCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ContentCmd())

	return cmd
}

// addLayoutFlags registers the flags every container command takes
func addLayoutFlags(cmd *cobra.Command) {
	cli.AddReportFlag(cmd)
	cli.AddOutputFlags(cmd, "Minimal output (container ID only)")
}

// resolveID expands a container reference to a full ID. An exact match
// wins; otherwise the reference must be a prefix of exactly one ID.
func resolveID(layout *models.Layout, ref string) (string, error) {
	if ref == "" {
		return "", layoutservice.ErrEmptyContainerID
	}

	var matches []string
	for _, c := range layout.Containers {
		if c.ID == ref {
			return ref, nil
		}
		if strings.HasPrefix(c.ID, ref) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", layoutservice.ErrContainerNotFound, ref)
	case 1:
		return matches[0], nil
	}
	return "", cli.Usagef("container %q is ambiguous (matches %s)", ref, strings.Join(matches, ", "))
}

// loadAndResolve reads the report's layout and resolves each reference
func loadAndResolve(ctx context.Context, c *cli.CLI, reportID int, refs ...string) ([]string, error) {
	layout, err := c.App.LayoutService.GetLayout(ctx, reportID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(refs))
	for i, ref := range refs {
		if ids[i], err = resolveID(layout, ref); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// printLayout reports the outcome of an edit in the formatter's mode
func printLayout(c *cli.CLI, f *cli.OutputFormatter, layout *models.Layout, containerID, message string) error {
	if f.Quiet {
		if containerID != "" {
			f.Println(containerID)
		}
		return nil
	}
	if f.JSON {
		return f.JSONSuccess(map[string]any{
			"report_id":    layout.Report.ID,
			"version":      layout.Report.Version,
			"container_id": containerID,
			"layout":       converters.ToDocument(layout),
		})
	}

	f.Printf("✓ %s\n\n", message)
	f.Printf("%s\n", render.Grid(layout, render.Options{
		CellWidth: c.Config.Render.CellWidth,
		Selected:  containerID,
	}))
	return nil
}
