package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project",
		Long:  "Delete a project and all of its tasks. Asks for confirmation unless --force is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddFormatFlags(cmd, "Minimal output (no output on success)")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	force, _ := cmd.Flags().GetBool("force")
	projectID := cli.IDArg(cmd, args, "id")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if projectID == "" {
		formatter.ErrorWithSuggestion("INVALID_PROJECT_ID", "project ID is required",
			"Usage: hito project delete <id> [--force]")
		return cli.Exit(cli.ExitUsage, fmt.Errorf("project ID is required"))
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	project, err := cliInstance.App.ProjectService.GetProject(ctx, projectID)
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}

	if !force && !quietMode && !jsonOutput {
		prompt := fmt.Sprintf("Delete project '%s' (ID: %s) and all its tasks?", project.Name, project.ID)
		if !cli.Confirm(cmd.InOrStdin(), prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ProjectService.DeleteProject(ctx, projectID); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success("deleted", map[string]string{"id": projectID})
	}

	fmt.Printf("✓ Project %s deleted successfully\n", projectID)
	return nil
}
