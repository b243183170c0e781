package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a project",
		Long: `List the tasks of a project, optionally filtered by status.

Examples:
  hito task list --project=p1
  hito task list --project=p1 --status=in_progress`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	addProjectFlag(cmd)
	cmd.Flags().String("status", "", "Only show tasks with this status")
	cli.AddFormatFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID := cli.ProjectID(cmd)
	rawStatus, _ := cmd.Flags().GetString("status")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cli.RequireProjectID(formatter, projectID); err != nil {
		return err
	}

	var filter models.TaskStatus
	if rawStatus != "" {
		if filter, err = models.ParseTaskStatus(rawStatus); err != nil {
			return formatter.Fail("INVALID_STATUS", err)
		}
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	tasks, err := cliInstance.App.TaskService.GetTasks(ctx, projectID)
	if err != nil {
		return formatter.Fail("LIST_ERROR", err)
	}

	if filter != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Status == filter {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if quietMode {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success("tasks", tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		line := fmt.Sprintf("  [%s] %s (%s)", t.ID, t.Title, styles.TaskStatus(t.Status))
		if t.IsAssigned() {
			line += " " + styles.SubtitleStyle.Render("@"+t.AssigneeName())
		}
		fmt.Println(line)
	}

	return nil
}
