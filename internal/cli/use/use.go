// Package use holds the commands that pin a report for the current shell
//
// e.g., reportgrid use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Pin a report for the current shell",
		Long: `Pin a report so container and report commands can omit --report/--id.

The pinned report lives in $REPORTGRID_REPORT, so it only affects the shell
that evaluated the export:

  eval $(reportgrid use report 3)
  reportgrid container insert 1c0ffee5 --after`,
	}

	cmd.AddCommand(ReportCmd())

	return cmd
}
