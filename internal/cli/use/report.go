package use

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
)

// ReportCmd returns the use report subcommand
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [report-id]",
		Short: "Set report context for current shell session",
		Long: `Set the current report context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(reportgrid use report 3)              # Use report 3
  eval $(reportgrid use report --clear)        # Clear report context
  reportgrid use report --show                 # Show current report

The REPORTGRID_REPORT environment variable will be set in your current shell
session only. The --report and --id flags on other commands take precedence
over this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseReport,
	}

	cmd.Flags().Bool("clear", false, "Clear the current report context")
	cmd.Flags().Bool("show", false, "Show the current report context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseReport(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	// Handle --show flag
	if showFlag {
		return showCurrentReport(cmd)
	}

	// Handle --clear flag
	if clearFlag {
		if dryRun {
			fmt.Fprintf(errOut, "Would clear %s\n", cli.ReportEnv)
			return nil
		}
		fmt.Fprintf(out, "unset %s\n", cli.ReportEnv)
		fmt.Fprintf(errOut, "Cleared report context\n")
		return nil
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if len(args) == 0 {
			return f.Fail(cli.Usagef("report ID required\nUsage: eval $(reportgrid use report <report-id>)"))
		}
		reportID, err := cli.ParseReportArg(args[0])
		if err != nil {
			return f.Fail(err)
		}

		// Validate report exists
		report, err := c.App.ReportService.GetReportByID(ctx, reportID)
		if err != nil {
			return f.Fail(err)
		}

		if dryRun {
			fmt.Fprintf(errOut, "Would set %s=%d (%s)\n", cli.ReportEnv, reportID, report.Title)
			return nil
		}

		// Shell export goes to stdout for eval
		fmt.Fprintf(out, "export %s=%d\n", cli.ReportEnv, reportID)
		fmt.Fprintf(errOut, "Now using report %d: %s\n", reportID, report.Title)
		return nil
	})
}

func showCurrentReport(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	current := os.Getenv(cli.ReportEnv)
	if current == "" {
		fmt.Fprintln(out, "No report context set")
		fmt.Fprintln(out, "Use 'eval $(reportgrid use report <report-id>)' to set one")
		return nil
	}

	reportID, err := strconv.Atoi(current)
	if err != nil {
		fmt.Fprintf(out, "Invalid report context: %s\n", current)
		return nil
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		report, err := c.App.ReportService.GetReportByID(ctx, reportID)
		if err != nil {
			fmt.Fprintf(out, "Current report: %d (not found)\n", reportID)
			return nil
		}
		fmt.Fprintf(out, "Current report: %d - %s\n", reportID, report.Title)
		return nil
	})
}
