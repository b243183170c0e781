package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/hito/internal/session"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	httpClient *http.Client
	store      session.Store
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithHTTPClient sets the base HTTP client API calls are made through
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = c
	}
}

// WithSessionStore replaces the local database as the token store
func WithSessionStore(store session.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}
