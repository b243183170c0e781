package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/app"
	clipkg "github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/session"
	"github.com/thenoetrevino/hito/internal/testutil"
)

// SetupCLITest starts a fake API and returns an App already logged in to it.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*testutil.FakeAPI, *app.App) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	return fake, newApp(fake, fake.Token())
}

// SetupLoggedOutCLITest is SetupCLITest without a session.
func SetupLoggedOutCLITest(t *testing.T) (*testutil.FakeAPI, *app.App) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	return fake, newApp(fake, "")
}

func newApp(fake *testutil.FakeAPI, token string) *app.App {
	sess := session.NewMemorySession(token)
	return app.New(api.NewClient(fake.URL(), sess), sess)
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns everything it wrote to stdout.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := clipkg.WithApp(context.Background(), testApp)

	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})
	return output, executeErr
}
