package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/models"
)

// StatusCmd returns the task status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> [status]",
		Short: "Change a task's status",
		Long: `Set a task's status, or advance it to the next one with --next.
The order is To Do, In Progress, In Review, Done, and Done wraps to To Do.

Examples:
  hito task status t1 done --project=p1
  hito task status t1 --next --project=p1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runStatus,
	}

	addProjectFlag(cmd)
	cmd.Flags().Bool("next", false, "Advance to the next status")
	cli.AddFormatFlags(cmd, "Minimal output (new status only)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID := cli.ProjectID(cmd)
	next, _ := cmd.Flags().GetBool("next")
	taskID := cli.IDArg(cmd, args, "id")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cli.RequireProjectID(formatter, projectID); err != nil {
		return err
	}

	if next == (len(args) == 2) {
		formatter.ErrorWithSuggestion("INVALID_ARGUMENTS", "give either a status or --next",
			"Usage: hito task status <id> <status> --project=<project-id>")
		return cli.Exit(cli.ExitUsage, fmt.Errorf("give either a status or --next"))
	}

	var status models.TaskStatus
	if !next {
		if status, err = models.ParseTaskStatus(args[1]); err != nil {
			return formatter.Fail("INVALID_STATUS", err)
		}
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	if next {
		current, err := cliInstance.App.TaskService.GetTask(ctx, projectID, taskID)
		if err != nil {
			return formatter.Fail("TASK_NOT_FOUND", err)
		}
		status = current.Status.Next()
	}

	task, err := cliInstance.App.TaskService.UpdateTaskStatus(ctx, projectID, taskID, status)
	if err != nil {
		return formatter.Fail("STATUS_UPDATE_ERROR", err)
	}

	if quietMode {
		fmt.Println(task.Status)
		return nil
	}

	if jsonOutput {
		return formatter.Success("task", task)
	}

	fmt.Printf("✓ Task %s is now %s\n", task.ID, styles.TaskStatus(task.Status))
	return nil
}
