package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	projectservice "github.com/thenoetrevino/hito/internal/services/project"
)

// UsersCmd returns the project users subcommand
func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users [id]",
		Short: "List project members",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUsers,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cli.AddFormatFlags(cmd, "Minimal output (user IDs only)")

	return cmd
}

func runUsers(cmd *cobra.Command, args []string) error {
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
			"Usage: hito project users <id>")
		return cli.Exit(cli.ExitUsage, fmt.Errorf("project ID is required"))
	}

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	users, err := cliInstance.App.ProjectService.GetProjectUsers(ctx, projectID)
	if err != nil {
		return formatter.Fail("LIST_ERROR", err)
	}

	if quietMode {
		for _, u := range users {
			fmt.Println(u.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success("users", users)
	}

	if len(users) == 0 {
		fmt.Println("No members")
		return nil
	}

	fmt.Printf("Found %d members:\n\n", len(users))
	for _, u := range users {
		fmt.Printf("  [%s] %s %s\n", u.ID, u.DisplayName(), styles.SubtitleStyle.Render(u.Role))
	}
	return nil
}

// AddUserCmd returns the project add-user subcommand
func AddUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Add a user to a project",
		Long: `Add a member of your tenant to a project.

Examples:
  hito project add-user --project=p1 --user=u2
  hito project add-user --project=p1 --user=u2 --role=admin`,
		Args: cobra.NoArgs,
		RunE: runAddUser,
	}

	cmd.Flags().String("project", "", "Project ID (required)")
	cmd.Flags().String("user", "", "User ID (required)")
	cmd.Flags().String("role", projectservice.DefaultMemberRole, "Role in the project")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	cli.AddFormatFlags(cmd, "Minimal output (no output on success)")

	return cmd
}

func runAddUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID, _ := cmd.Flags().GetString("project")
	userID, _ := cmd.Flags().GetString("user")
	role, _ := cmd.Flags().GetString("role")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	if err := cliInstance.App.ProjectService.AddUserToProject(ctx, projectID, userID, role); err != nil {
		return formatter.Fail("ADD_USER_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success("member", map[string]string{"project_id": projectID, "user_id": userID, "role": role})
	}

	fmt.Printf("✓ User %s added to project %s as %s\n", userID, projectID, role)
	return nil
}

// RemoveUserCmd returns the project remove-user subcommand
func RemoveUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-user",
		Short: "Remove a user from a project",
		Args:  cobra.NoArgs,
		RunE:  runRemoveUser,
	}

	cmd.Flags().String("project", "", "Project ID (required)")
	cmd.Flags().String("user", "", "User ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	cli.AddFormatFlags(cmd, "Minimal output (no output on success)")

	return cmd
}

func runRemoveUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	projectID, _ := cmd.Flags().GetString("project")
	userID, _ := cmd.Flags().GetString("user")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	if err := cliInstance.App.ProjectService.RemoveUserFromProject(ctx, projectID, userID); err != nil {
		return formatter.Fail("REMOVE_USER_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success("removed", map[string]string{"project_id": projectID, "user_id": userID})
	}

	fmt.Printf("✓ User %s removed from project %s\n", userID, projectID)
	return nil
}
