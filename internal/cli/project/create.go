package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/models"
	projectservice "github.com/thenoetrevino/hito/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project in the current tenant.

Examples:
  hito project create --name="Website"
  hito project create --name="Website" --description="Q3 relaunch" --status=on_hold`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("status", string(models.DefaultProjectStatus), "Project status (active, on_hold, completed, archived)")
	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	rawStatus, _ := cmd.Flags().GetString("status")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	status, err := models.ParseProjectStatus(rawStatus)
	if err != nil {
		return formatter.Fail("INVALID_STATUS", err)
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	project, err := cliInstance.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:        name,
		Description: description,
		Status:      status,
	})
	if err != nil {
		return formatter.Fail("PROJECT_CREATE_ERROR", err)
	}

	if quietMode {
		fmt.Println(project.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("project", project)
	}

	fmt.Printf("✓ Project '%s' created successfully (ID: %s)\n", project.Name, project.ID)
	return nil
}
