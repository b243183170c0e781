// Package task holds the "hito task" commands. Every task is addressed
// through its project, so each subcommand takes --project or
// reads the project chosen with "hito use project".
package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/config"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  "List, inspect, create, update, assign, and delete the tasks of a project.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(AssignCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}

func addProjectFlag(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "Project ID (defaults to "+config.EnvProject+")")
}

func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
}

// requireTaskID reports a usage error when no task id was given.
func requireTaskID(formatter *cli.OutputFormatter, taskID, usage string) error {
	if taskID != "" {
		return nil
	}
	formatter.ErrorWithSuggestion("INVALID_TASK_ID", "task ID is required", "Usage: "+usage)
	return cli.Exit(cli.ExitUsage, fmt.Errorf("task ID is required"))
}
