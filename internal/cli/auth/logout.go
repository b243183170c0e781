package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
)

// LogoutCmd returns the auth logout subcommand
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE:  runLogout,
	}

	cli.AddFormatFlags(cmd, "Minimal output (no output on success)")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.App.AuthService.Logout(ctx); err != nil {
		return formatter.Fail("LOGOUT_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success("session", map[string]any{"authenticated": false})
	}

	fmt.Println("✓ Logged out")
	return nil
}
