package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/converters"
)

// ExportCmd returns the report export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a report layout as a template",
		Long: `Write a report's layout as a YAML or JSON document that 'report import' can read back.

Examples:
  reportgrid report export --id=3 > weekly.yaml
  reportgrid report export --id=3 --format=json --output=weekly.json
`,
		RunE: runExport,
	}

	addIDFlag(cmd)
	cmd.Flags().String("format", "", "Output format: yaml or json (default from --output extension, else yaml)")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		reportID, err := cli.GetReportID(cmd, "id")
		if err != nil {
			return f.Fail(err)
		}

		format, err := exportFormat(formatFlag, output)
		if err != nil {
			return f.Fail(err)
		}

		layout, err := c.App.LayoutService.GetLayout(ctx, reportID)
		if err != nil {
			return f.Fail(err)
		}
		doc := converters.ToDocument(layout)

		var w io.Writer = cmd.OutOrStdout()
		if output != "" {
			file, err := os.Create(output)
			if err != nil {
				return f.Fail(fmt.Errorf("creating %s: %w", output, err))
			}
			defer file.Close()
			w = file
		}

		if err := converters.Encode(w, format, doc); err != nil {
			return f.Fail(err)
		}
		if output != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported report %d to %s\n", reportID, output)
		}
		return nil
	})
}

func exportFormat(flag, output string) (converters.Format, error) {
	switch {
	case flag != "":
	case output != "":
		flag = filepath.Ext(output)
	default:
		return converters.FormatYAML, nil
	}

	format, err := converters.ParseFormat(flag)
	if err != nil {
		return "", cli.Usagef("%v", err)
	}
	if format == converters.FormatHCL {
		return "", cli.Usagef("HCL templates can be imported but not exported")
	}
	return format, nil
}
