package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	authservice "github.com/thenoetrevino/hito/internal/services/auth"
)

// RegisterCmd returns the auth register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and organization",
		Long: `Register a new user together with the organization (tenant) they belong to.
The password is read from stdin when --password-stdin is given, otherwise it
is prompted for twice.

Examples:
  hito auth register --username alice --email alice@example.com \
    --tenant-name "Acme" --tenant-domain acme.example.com`,
		Args: cobra.NoArgs,
		RunE: runRegister,
	}

	cmd.Flags().String("username", "", "Username (required)")
	cmd.Flags().String("email", "", "Email (required)")
	cmd.Flags().String("tenant-name", "", "Organization name (required)")
	cmd.Flags().String("tenant-domain", "", "Organization domain (required)")
	cmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
	cli.AddFormatFlags(cmd, "Minimal output (new user ID only)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := cli.FormatFlags(cmd)
	fromStdin, _ := cmd.Flags().GetBool("password-stdin")

	req := authservice.RegisterRequest{}
	req.Username, _ = cmd.Flags().GetString("username")
	req.Email, _ = cmd.Flags().GetString("email")
	req.TenantName, _ = cmd.Flags().GetString("tenant-name")
	req.TenantDomain, _ = cmd.Flags().GetString("tenant-domain")

	cliInstance, formatter, err := cli.Setup(ctx, jsonOutput, quietMode)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if fromStdin {
		req.Password, err = readSecret(cmd.InOrStdin())
		req.ConfirmPassword = req.Password
	} else if req.Password, err = promptPassword(ctx); err == nil {
		req.ConfirmPassword, err = promptPassword(ctx)
	}
	if err != nil {
		formatter.Error("PASSWORD_READ_ERROR", err.Error())
		return cli.Exit(cli.ExitUsage, err)
	}

	user, err := cliInstance.App.AuthService.Register(ctx, req)
	if err != nil {
		return formatter.Fail("REGISTRATION_FAILED", err)
	}

	if quietMode {
		fmt.Println(user.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success("user", user)
	}

	fmt.Printf("✓ %s\n", authservice.RegistrationSuccessMessage)
	return nil
}
