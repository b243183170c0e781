package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// FileName is the log file created inside <dataDir>/logs.
const FileName = "hito.log"

// Init initializes the logging system, writing logs to <dataDir>/logs/hito.log
// Uses text format for human readability. The returned file should be closed
// on shutdown.
func Init(dataDir string) (*os.File, error) {
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filepath.Join(logDir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler).With("pid", os.Getpid())
	slog.SetDefault(Logger)

	// Route the standard log package to the same file so nothing writes
	// over the terminal UI.
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Component returns a logger tagged with the given component name.
func Component(name string) *slog.Logger {
	if Logger == nil {
		return slog.Default().With("component", name)
	}
	return Logger.With("component", name)
}
