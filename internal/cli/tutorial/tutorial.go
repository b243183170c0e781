// Package tutorial prints the scripting quick reference.
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print the scripting quick reference",
		Long: `Print the hito scripting workflow as markdown: sessions, projects,
tasks, and exit codes. Use --render for terminal formatting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, _ := cmd.Flags().GetBool("render")
			return outputTutorial(cmd, render)
		},
	}
	cmd.Flags().Bool("render", false, "Format the markdown for the terminal")
	return cmd
}

func outputTutorial(cmd *cobra.Command, render bool) error {
	if !render {
		fmt.Fprint(cmd.OutOrStdout(), tutorialContent)
		return nil
	}
	out, err := glamour.Render(tutorialContent, "dark")
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
