package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/database"
	authservice "github.com/thenoetrevino/hito/internal/services/auth"
	projectservice "github.com/thenoetrevino/hito/internal/services/project"
	taskservice "github.com/thenoetrevino/hito/internal/services/task"
	userservice "github.com/thenoetrevino/hito/internal/services/user"
	"github.com/thenoetrevino/hito/internal/session"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Session *session.Session
	Client  *api.Client

	AuthService    authservice.Service
	ProjectService projectservice.Service
	TaskService    taskservice.Service
	UserService    userservice.Service

	// db is nil when the session is not backed by the local store
	db *sql.DB
}

// New wires every service to the given client and session.
func New(client *api.Client, sess *session.Session) *App {
	return &App{
		Session:        sess,
		Client:         client,
		AuthService:    authservice.NewService(client, sess),
		ProjectService: projectservice.NewService(client),
		TaskService:    taskservice.NewService(client),
		UserService:    userservice.NewService(client),
	}
}

// Open builds the application from configuration: the local store in the
// data directory, the persisted session and the API client.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := appConfig{}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		db    *sql.DB
		store = o.store
	)
	if store == nil {
		var err error
		db, err = database.InitDB(ctx, cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		store = session.NewSQLStore(database.NewRepository(db))
	}

	sess, err := session.New(ctx, store)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	clientOpts := []api.Option{api.WithTimeout(cfg.Timeout())}
	if o.logger != nil {
		clientOpts = append(clientOpts, api.WithLogger(o.logger))
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}

	a := New(api.NewClient(cfg.APIURL, sess, clientOpts...), sess)
	a.db = db
	return a, nil
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
