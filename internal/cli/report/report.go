// Package report holds all cli commands related to reports
//
// e.g., reportgrid report ...
package report

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/models"
)

// ReportCmd returns the report parent command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Manage reports",
		Long:  "Create, inspect, edit and exchange reports and their grid layouts.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(RenderCmd())
	cmd.AddCommand(EditCmd())

	return cmd
}

// addIDFlag registers --id, which falls back to $REPORTGRID_REPORT
func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().Int("id", 0, "Report ID (defaults to $REPORTGRID_REPORT)")
}

func reportFields(r *models.Report) map[string]any {
	return map[string]any{
		"id":          r.ID,
		"title":       r.Title,
		"description": r.Description,
		"version":     r.Version,
		"created_at":  r.CreatedAt.Format(time.RFC3339),
		"updated_at":  r.UpdatedAt.Format(time.RFC3339),
	}
}
