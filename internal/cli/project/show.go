package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show project details",
		Long:  "Display a project with its description and tasks.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID := cli.IDArg(cmd, args, "id")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if projectID == "" {
		formatter.ErrorWithSuggestion("INVALID_PROJECT_ID", "project ID is required",
			"Usage: hito project show <id> or hito project show --id=<id>")
		return cli.Exit(cli.ExitUsage, fmt.Errorf("project ID is required"))
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	project, err := cliInstance.App.ProjectService.GetProjectWithTasks(ctx, projectID)
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}

	if quietMode {
		fmt.Println(project.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("project", project)
	}

	fmt.Println(renderProject(project))
	return nil
}

func renderProject(p *models.Project) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(p.Name))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render("Project " + p.ID))
	content.WriteString("\n\n")

	content.WriteString(styles.LabelStyle.Render("Status:") + " " + styles.ProjectStatus(p.Status))
	content.WriteString("\n")
	content.WriteString(styles.Field("Created", p.CreatedAt.Display()))
	content.WriteString("\n")

	if p.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(styles.ValueStyle.Render(p.Description))
		content.WriteString("\n")
	}

	content.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Tasks (%d)", len(p.Tasks))))
	content.WriteString("\n")
	if len(p.Tasks) == 0 {
		content.WriteString(styles.SubtitleStyle.Render("No tasks yet"))
	}
	for i, t := range p.Tasks {
		if i > 0 {
			content.WriteString("\n")
		}
		fmt.Fprintf(&content, "  [%s] %s  %s  %s", t.ID, t.Title, styles.TaskStatus(t.Status), styles.SubtitleStyle.Render(t.AssigneeName()))
	}

	return styles.RenderCard(content.String())
}
