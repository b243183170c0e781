// Package auth holds the "hito auth" commands.
package auth

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// AuthCmd returns the auth parent command
func AuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, register, and manage the stored session",
	}

	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}

// readSecret reads one line from in, for --password-stdin.
func readSecret(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
