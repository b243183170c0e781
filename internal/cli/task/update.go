package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/models"
	taskservice "github.com/thenoetrevino/hito/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update a task. Only the flags you pass are sent.

Examples:
  hito task update t1 --project=p1 --title="New title"
  hito task update t1 --project=p1 --assignee=u2
  hito task update t1 --project=p1 --unassign`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	addProjectFlag(cmd)
	addIDFlag(cmd)
	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New task description")
	cmd.Flags().String("status", "", "New task status (todo, in_progress, in_review, done)")
	cmd.Flags().String("assignee", "", "User ID to assign")
	cmd.Flags().Bool("unassign", false, "Remove the current assignee")
	cmd.MarkFlagsMutuallyExclusive("assignee", "unassign")
	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	if err := requireTaskID(formatter, taskID, "hito task update <id> --project=<project-id> [flags]"); err != nil {
		return err
	}

	var req taskservice.UpdateTaskRequest
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("status") {
		raw, _ := cmd.Flags().GetString("status")
		status, err := models.ParseTaskStatus(raw)
		if err != nil {
			return formatter.Fail("INVALID_STATUS", err)
		}
		req.Status = &status
	}
	if cmd.Flags().Changed("assignee") {
		assignee, _ := cmd.Flags().GetString("assignee")
		req.AssigneeID = &assignee
	}
	req.ClearAssignee, _ = cmd.Flags().GetBool("unassign")

	if req.IsEmpty() {
		formatter.ErrorWithSuggestion("NO_UPDATES",
			"at least one of --title, --description, --status, --assignee, or --unassign must be specified",
			"Example: hito task update t1 --project=p1 --title=\"New title\"")
		return cli.Exit(cli.ExitUsage, taskservice.ErrNothingToUpdate)
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, projectID, taskID, req)
	if err != nil {
		return formatter.Fail("TASK_UPDATE_ERROR", err)
	}

	if quietMode {
		fmt.Println(task.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("task", task)
	}

	fmt.Printf("✓ Task %s updated successfully\n", task.ID)
	return nil
}
