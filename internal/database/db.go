// Package database handles the initialization of the local SQLite store that
// backs the client's persisted state.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// FileName is the database created inside the data directory.
const FileName = "hito.db"

// InitDB opens (creating if needed) the local store in dataDir.
func InitDB(ctx context.Context, dataDir string) (*sql.DB, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return Open(ctx, filepath.Join(dataDir, FileName))
}

// Open opens the database at path, applies connection pragmas and runs
// migrations. Pass ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	closeOnErr := func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		// WAL lets the CLI read while the TUI holds the store open
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("Failed to apply pragma", "pragma", pragma, "error", err)
			closeOnErr()
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeOnErr()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		closeOnErr()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
