package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/logging"
	"github.com/thenoetrevino/hito/internal/tui/core"
)

// shutdownGrace bounds how long in-flight requests may run after a signal.
const shutdownGrace = 2 * time.Second

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// logs go to a file, the terminal belongs to the UI
	logFile, err := logging.Init(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.Open(ctx, cfg, app.WithLogger(logging.Component("api")))
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	slog.Info("starting tui", "api", cfg.APIURL, "authenticated", application.Session.IsAuthenticated())

	p := tea.NewProgram(core.New(ctx, application, cfg), tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
		}
	}

	return nil
}
