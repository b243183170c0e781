package auth

import (
	"context"
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
)

// LoginCmd returns the auth login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Long: `Sign in with your email (or username) and password. The token is stored
locally and used by every other command until it expires or you log out.

Examples:
  hito auth login --username alice@example.com
  echo "$PASSWORD" | hito auth login --username alice@example.com --password-stdin`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}

	cmd.Flags().String("username", "", "Email or username (required)")
	if err := cmd.MarkFlagRequired("username"); err != nil {
		panic(err)
	}
	cmd.Flags().String("password", "", "Password (prefer --password-stdin or the prompt)")
	cmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	cli.AddFormatFlags(cmd, "Minimal output (no output on success)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	fromStdin, _ := cmd.Flags().GetBool("password-stdin")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	switch {
	case cmd.Flags().Changed("password"):
	case fromStdin:
		password, err = readSecret(cmd.InOrStdin())
	default:
		password, err = promptPassword(ctx)
	}
	if err != nil {
		formatter.Error("PASSWORD_READ_ERROR", err.Error())
		return cli.Exit(cli.ExitUsage, err)
	}

	if _, err := cliInstance.App.AuthService.Login(ctx, username, password); err != nil {
		return formatter.Fail("LOGIN_FAILED", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success("session", map[string]any{"authenticated": true, "username": username})
	}

	fmt.Printf("✓ Logged in as %s\n", username)
	return nil
}

func promptPassword(ctx context.Context) (string, error) {
	var password string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password),
	)).RunWithContext(ctx)
	return password, err
}
