package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/models"
	taskservice "github.com/thenoetrevino/hito/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in a project.

Examples:
  hito task create --project=p1 --title="Write copy"
  hito task create --project=p1 --title="Review" --status=in_review --assignee=u2`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	addProjectFlag(cmd)
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		panic(err)
	}
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("status", string(models.DefaultTaskStatus), "Task status (todo, in_progress, in_review, done)")
	cmd.Flags().String("assignee", "", "User ID to assign")
	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID := cli.ProjectID(cmd)
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	rawStatus, _ := cmd.Flags().GetString("status")
	assignee, _ := cmd.Flags().GetString("assignee")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cli.RequireProjectID(formatter, projectID); err != nil {
		return err
	}

	status, err := models.ParseTaskStatus(rawStatus)
	if err != nil {
		return formatter.Fail("INVALID_STATUS", err)
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, projectID, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
		AssigneeID:  assignee,
	})
	if err != nil {
		return formatter.Fail("TASK_CREATE_ERROR", err)
	}

	if quietMode {
		fmt.Println(task.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("task", task)
	}

	fmt.Printf("✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
	return nil
}
