package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task. Asks for confirmation unless --force is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	addProjectFlag(cmd)
	addIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddFormatFlags(cmd, "Minimal output (no output on success)")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	force, _ := cmd.Flags().GetBool("force")
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

	if err := requireTaskID(formatter, taskID, "hito task delete <id> --project=<project-id> [--force]"); err != nil {
		return err
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	if !force && !quietMode && !jsonOutput {
		task, err := cliInstance.App.TaskService.GetTask(ctx, projectID, taskID)
		if err != nil {
			return formatter.Fail("TASK_NOT_FOUND", err)
		}
		if !cli.Confirm(cmd.InOrStdin(), fmt.Sprintf("Delete task '%s' (ID: %s)?", task.Title, task.ID)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, projectID, taskID); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success("deleted", map[string]string{"id": taskID, "project_id": projectID})
	}

	fmt.Printf("✓ Task %s deleted successfully\n", taskID)
	return nil
}
