package auth

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
)

// StatusCmd returns the auth status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is stored",
		Long:  "Show whether a session token is stored, and who it was issued to. The token is not checked against the server.",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}

	cli.AddFormatFlags(cmd, "Exit status only")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
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

	claims := cliInstance.App.Session.Claims()
	now := time.Now()

	if quietMode {
		return nil
	}

	if jsonOutput {
		data := map[string]any{"authenticated": true}
		if claims != nil {
			data["subject"] = claims.Subject
			data["expired"] = claims.Expired(now)
			if !claims.ExpiresAt.IsZero() {
				data["expires_at"] = claims.ExpiresAt
			}
		}
		return formatter.Success("session", data)
	}

	fmt.Println(styles.SuccessStyle.Render("Logged in"))
	if claims == nil {
		return nil
	}
	if claims.Subject != "" {
		fmt.Println(styles.Field("User", claims.Subject))
	}
	if !claims.ExpiresAt.IsZero() {
		expiry := claims.ExpiresAt.Local().Format(time.RFC1123)
		if claims.Expired(now) {
			expiry += " (expired)"
		}
		fmt.Println(styles.Field("Expires", expiry))
	}
	return nil
}
