package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/logging"
)

type contextKey struct{}

// WithApp stores an already built application in ctx. Commands run with such
// a context use it instead of opening their own.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// CLI represents the CLI application context
type CLI struct {
	App     *app.App
	owned   bool
	logFile *os.File
}

// GetCLIFromContext returns the application stored by WithApp, or opens one
// from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(contextKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logFile, err := logging.Init(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	a, err := app.Open(ctx, cfg, app.WithLogger(logging.Component("cli")))
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	return &CLI{App: a, owned: true, logFile: logFile}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		_ = c.logFile.Close()
	}
	return err
}

// ErrNotAuthenticated is reported by commands that need a session.
var ErrNotAuthenticated = errors.New("not logged in")

// RequireAuth fails before any request when there is no token.
func (c *CLI) RequireAuth(f *OutputFormatter) error {
	if c.App.Session.IsAuthenticated() {
		return nil
	}
	f.ErrorWithSuggestion("NOT_AUTHENTICATED", ErrNotAuthenticated.Error(),
		"Run 'hito auth login --username <email>' first")
	return Exit(ExitUnauthenticated, ErrNotAuthenticated)
}

// Setup opens the CLI for a command and builds its formatter from the
// --json and --quiet flags. The caller must Close the returned CLI.
func Setup(ctx context.Context, jsonOutput, quiet bool) (*CLI, *OutputFormatter, error) {
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quiet}
	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return nil, formatter, Exit(ExitError, err)
	}
	return cliInstance, formatter, nil
}

// IDArg returns the first positional argument, or the value of flag.
func IDArg(cmd *cobra.Command, args []string, flag string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	id, _ := cmd.Flags().GetString(flag)
	return strings.TrimSpace(id)
}

// CloseQuietly closes c and logs a failure.
func (c *CLI) CloseQuietly() {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// FormatFlags reads the --json and --quiet flags every command carries.
func FormatFlags(cmd *cobra.Command) (jsonOutput, quiet bool) {
	jsonOutput, _ = cmd.Flags().GetBool("json")
	quiet, _ = cmd.Flags().GetBool("quiet")
	return jsonOutput, quiet
}

// AddFormatFlags registers --json and --quiet.
func AddFormatFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// ProjectID returns --project, falling back to the HITO_PROJECT variable set
// by "hito use project".
func ProjectID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("project"); strings.TrimSpace(id) != "" {
		return strings.TrimSpace(id)
	}
	return strings.TrimSpace(os.Getenv(config.EnvProject))
}

// RequireProjectID reports a usage error when no project was selected.
func RequireProjectID(f *OutputFormatter, projectID string) error {
	if projectID != "" {
		return nil
	}
	f.ErrorWithSuggestion("NO_PROJECT", "project ID is required",
		"Pass --project=<id> or run: eval $(hito use project <id>)")
	return Exit(ExitUsage, errors.New("project ID is required"))
}
