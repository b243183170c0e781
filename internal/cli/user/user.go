// Package user holds the "hito user" commands.
package user

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up users",
	}

	cmd.AddCommand(MeCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// MeCmd returns the user me subcommand
func MeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE:  runMe,
	}

	cli.AddFormatFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runMe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	me, err := cliInstance.App.UserService.GetCurrentUser(ctx)
	if err != nil {
		return formatter.Fail("USER_ERROR", err)
	}

	if quietMode {
		fmt.Println(me.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("user", me)
	}

	fmt.Println(styles.TitleStyle.Render(me.DisplayName()))
	fmt.Println(styles.Field("ID", me.ID))
	fmt.Println(styles.Field("Email", me.Email))
	fmt.Println(styles.Field("Role", me.Role))
	fmt.Println(styles.Field("Tenant", me.TenantID))
	return nil
}

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the users of a tenant",
		Long:  "List the users of a tenant. Defaults to the signed-in user's tenant.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("tenant", "", "Tenant ID (defaults to your own)")
	cli.AddFormatFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	tenantID, _ := cmd.Flags().GetString("tenant")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	if tenantID == "" {
		me, err := cliInstance.App.UserService.GetCurrentUser(ctx)
		if err != nil {
			return formatter.Fail("USER_ERROR", err)
		}
		tenantID = me.TenantID
	}

	users, err := cliInstance.App.UserService.GetUsersByTenant(ctx, tenantID)
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

	printUsers(users)
	return nil
}

func printUsers(users []*models.User) {
	if len(users) == 0 {
		fmt.Println("No users found")
		return
	}
	fmt.Printf("Found %d users:\n\n", len(users))
	for _, u := range users {
		fmt.Printf("  [%s] %s <%s> %s\n", u.ID, u.DisplayName(), u.Email, styles.SubtitleStyle.Render(u.Role))
	}
}
