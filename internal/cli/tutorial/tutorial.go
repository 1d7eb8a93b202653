// Package tutorial prints a short guide to working with report layouts
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/render"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a walkthrough of the grid commands",
		Long: `Print a walkthrough of the reportgrid workflow as markdown.

Use --render to format it for the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, _ := cmd.Flags().GetBool("render")
			return outputTutorial(cmd, rendered)
		},
	}
	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	return cmd
}

func outputTutorial(cmd *cobra.Command, rendered bool) error {
	out := tutorialContent
	if rendered {
		var err error
		if out, err = render.Markdown(tutorialContent, 80, ""); err != nil {
			return err
		}
		out += "\n"
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
