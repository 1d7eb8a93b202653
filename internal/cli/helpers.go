package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// ReportEnv names the environment variable set by 'reportgrid use report'
const ReportEnv = "REPORTGRID_REPORT"

// AddReportFlag registers the --report flag used by layout commands
func AddReportFlag(cmd *cobra.Command) {
	cmd.Flags().Int("report", 0, "Report ID (defaults to $"+ReportEnv+")")
}

// GetReportID reads the report id from the named flag, falling back to the
// REPORTGRID_REPORT environment variable
func GetReportID(cmd *cobra.Command, flagName string) (int, error) {
	if flag := cmd.Flags().Lookup(flagName); flag != nil && flag.Changed {
		id, err := cmd.Flags().GetInt(flagName)
		if err != nil {
			return 0, Usagef("invalid --%s: %v", flagName, err)
		}
		if id <= 0 {
			return 0, Usagef("--%s must be greater than 0", flagName)
		}
		return id, nil
	}

	env := os.Getenv(ReportEnv)
	if env == "" {
		return 0, Usagef("no report specified (use --%s or set %s)", flagName, ReportEnv)
	}
	id, err := strconv.Atoi(env)
	if err != nil || id <= 0 {
		return 0, Usagef("invalid %s value: %q", ReportEnv, env)
	}
	return id, nil
}

// ParseReportArg parses a positional report id
func ParseReportArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, Usagef("invalid report ID: %s", arg)
	}
	return id, nil
}
