package auth

import (
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/cli"
	authservice "github.com/thenoetrevino/hito/internal/services/auth"
	"github.com/thenoetrevino/hito/internal/testutil"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
)

func withStdin(cmd *cobra.Command, input string) *cobra.Command {
	cmd.SetIn(strings.NewReader(input))
	return cmd
}

func TestLogin(t *testing.T) {
	t.Run("success stores the token", func(t *testing.T) {
		fake, app := clitest.SetupLoggedOutCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, withStdin(LoginCmd(), testutil.TestPassword+"\n"),
			[]string{"--username", testutil.TestEmail, "--password-stdin"})
		require.NoError(t, err)
		assert.Contains(t, output, "Logged in as "+testutil.TestEmail)
		assert.True(t, app.Session.IsAuthenticated())

		reqs := fake.RequestsTo(http.MethodPost, "/token")
		require.Len(t, reqs, 1)
		assert.Equal(t, "application/x-www-form-urlencoded", reqs[0].Header.Get("Content-Type"))
		assert.Contains(t, string(reqs[0].Body), "grant_type=password")
	})

	t.Run("password flag", func(t *testing.T) {
		_, app := clitest.SetupLoggedOutCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--username", testutil.TestUsername, "--password", testutil.TestPassword, "--quiet"})
		require.NoError(t, err)
		assert.True(t, app.Session.IsAuthenticated())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, app := clitest.SetupLoggedOutCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, withStdin(LoginCmd(), "nope\n"),
			[]string{"--username", testutil.TestEmail, "--password-stdin", "--json"})
		require.Error(t, err)
		assert.False(t, app.Session.IsAuthenticated())

		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, authservice.LoginFailedMessage, errData["message"])
	})

	t.Run("server message wins on other statuses", func(t *testing.T) {
		fake, app := clitest.SetupLoggedOutCLITest(t)
		fake.Respond(http.MethodPost, "/token", http.StatusForbidden, map[string]any{"message": "Account locked"})

		output, err := clitest.ExecuteCLICommand(t, app, withStdin(LoginCmd(), testutil.TestPassword+"\n"),
			[]string{"--username", testutil.TestEmail, "--password-stdin", "--json"})
		require.Error(t, err)

		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "Account locked", errData["message"])
	})

	t.Run("empty password sends nothing", func(t *testing.T) {
		fake, app := clitest.SetupLoggedOutCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, withStdin(LoginCmd(), ""),
			[]string{"--username", testutil.TestEmail, "--password-stdin"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Empty(t, fake.Requests())
	})
}

func TestRegister(t *testing.T) {
	args := []string{
		"--username", "bob", "--email", "bob@example.com",
		"--tenant-name", "Acme", "--tenant-domain", "acme.example.com",
		"--password-stdin",
	}

	t.Run("success", func(t *testing.T) {
		fake, app := clitest.SetupLoggedOutCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, withStdin(RegisterCmd(), "longenough\n"), args)
		require.NoError(t, err)
		assert.Contains(t, output, authservice.RegistrationSuccessMessage)
		assert.False(t, app.Session.IsAuthenticated(), "registering does not log in")

		body := fake.RequestsTo(http.MethodPost, "/register")[0].JSON()
		assert.Equal(t, "Acme", body["tenant_name"])
		assert.Equal(t, "acme.example.com", body["tenant_domain"])
		assert.NotContains(t, body, "confirm_password")
	})

	t.Run("short password", func(t *testing.T) {
		fake, app := clitest.SetupLoggedOutCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, withStdin(RegisterCmd(), "short\n"), args)
		require.Error(t, err)
		assert.ErrorIs(t, err, authservice.ErrPasswordTooShort)
		assert.Empty(t, fake.Requests())
	})

	t.Run("duplicate account", func(t *testing.T) {
		_, app := clitest.SetupLoggedOutCLITest(t)
		dup := append([]string{}, args...)
		dup[3] = testutil.TestEmail

		output, err := clitest.ExecuteCLICommand(t, app, withStdin(RegisterCmd(), "longenough\n"), append(dup, "--json"))
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "Email or username already registered", errData["message"])
	})
}

func TestLogoutAndStatus(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{"--json"})
	require.NoError(t, err)
	session := testutil.ParseJSON(t, output)["session"].(map[string]any)
	assert.Equal(t, true, session["authenticated"])
	assert.Equal(t, testutil.TestUsername, session["subject"])
	assert.Equal(t, false, session["expired"])

	output, err = clitest.ExecuteCLICommand(t, app, LogoutCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Logged out")
	assert.False(t, app.Session.IsAuthenticated())

	_, err = clitest.ExecuteCLICommand(t, app, StatusCmd(), nil)
	require.Error(t, err)
	assert.Equal(t, cli.ExitUnauthenticated, cli.ExitCode(err))
}
