package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including description, status, assignee, and dates.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	addProjectFlag(cmd)
	addIDFlag(cmd)
	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID := cli.ProjectID(cmd)
	taskID := cli.IDArg(cmd, args, "id")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cli.RequireProjectID(formatter, projectID); err != nil {
		return err
	}

	if err := requireTaskID(formatter, taskID, "hito task show <id> --project=<project-id>"); err != nil {
		return err
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	task, err := cliInstance.App.TaskService.GetTask(ctx, projectID, taskID)
	if err != nil {
		return formatter.Fail("TASK_NOT_FOUND", err)
	}

	if quietMode {
		fmt.Println(task.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("task", task)
	}

	fmt.Println(renderTask(task))
	return nil
}

func renderTask(t *models.Task) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(t.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Task %s in project %s", t.ID, t.ProjectID)))
	content.WriteString("\n\n")

	content.WriteString(styles.LabelStyle.Render("Status:") + " " + styles.TaskStatus(t.Status))
	content.WriteString("\n")

	assignee := "Unassigned"
	if t.IsAssigned() {
		assignee = t.AssigneeName()
	}
	content.WriteString(styles.Field("Assignee", assignee))
	content.WriteString("\n")

	due := "-"
	if t.DueDate != nil {
		due = t.DueDate.Display()
	}
	content.WriteString(styles.Field("Due", due))
	content.WriteString("\n")
	content.WriteString(styles.Field("Created", t.CreatedAt.Display()))

	if t.Description != "" {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(styles.ValueStyle.Render(t.Description))
	}

	return styles.RenderCard(content.String())
}
