package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
)

// AssignCmd returns the task assign subcommand
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign [id]",
		Short: "Assign a task to a user",
		Long: `Assign a task to a member of the tenant.

Examples:
  hito task assign t1 --project=p1 --user=u2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAssign,
	}

	addProjectFlag(cmd)
	addIDFlag(cmd)
	cmd.Flags().String("user", "", "User ID (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAssign(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID := cli.ProjectID(cmd)
	userID, _ := cmd.Flags().GetString("user")
	taskID := cli.IDArg(cmd, args, "id")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cli.RequireProjectID(formatter, projectID); err != nil {
		return err
	}

	if err := requireTaskID(formatter, taskID, "hito task assign <id> --project=<project-id> --user=<user-id>"); err != nil {
		return err
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	task, err := cliInstance.App.TaskService.AssignTask(ctx, projectID, taskID, userID)
	if err != nil {
		return formatter.Fail("ASSIGN_ERROR", err)
	}

	if quietMode {
		fmt.Println(task.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("task", task)
	}

	fmt.Printf("✓ Task %s assigned to %s\n", task.ID, task.AssigneeName())
	return nil
}
