package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/models"
	projectservice "github.com/thenoetrevino/hito/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a project",
		Long: `Update a project's name, description, or status. Only the flags you pass are sent.

Examples:
  hito project update p1 --name="New name"
  hito project update --id=p1 --status=completed`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New project description")
	cmd.Flags().String("status", "", "New project status (active, on_hold, completed, archived)")
	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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
			"Usage: hito project update <id> [--name] [--description] [--status]")
		return cli.Exit(cli.ExitUsage, fmt.Errorf("project ID is required"))
	}

	var req projectservice.UpdateProjectRequest
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("status") {
		raw, _ := cmd.Flags().GetString("status")
		status, err := models.ParseProjectStatus(raw)
		if err != nil {
			return formatter.Fail("INVALID_STATUS", err)
		}
		req.Status = &status
	}

	if req.IsEmpty() {
		formatter.ErrorWithSuggestion("NO_UPDATES", "at least one of --name, --description, or --status must be specified",
			"Example: hito project update p1 --name=\"New name\"")
		return cli.Exit(cli.ExitUsage, projectservice.ErrNothingToUpdate)
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	project, err := cliInstance.App.ProjectService.UpdateProject(ctx, projectID, req)
	if err != nil {
		return formatter.Fail("PROJECT_UPDATE_ERROR", err)
	}

	if quietMode {
		fmt.Println(project.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("project", project)
	}

	fmt.Printf("✓ Project %s updated successfully\n", project.ID)
	return nil
}
