package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List every project visible to the signed-in user.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddFormatFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	projects, err := cliInstance.App.ProjectService.GetProjects(ctx)
	if err != nil {
		return formatter.Fail("LIST_ERROR", err)
	}

	if quietMode {
		for _, p := range projects {
			fmt.Println(p.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success("projects", projects)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		fmt.Printf("  [%s] %s (%s)\n", p.ID, styles.TitleStyle.Render(p.Name), styles.ProjectStatus(p.Status))
		if p.Description != "" {
			fmt.Printf("      %s\n", styles.SubtitleStyle.Render(p.DescriptionPreview()))
		}
	}

	return nil
}
