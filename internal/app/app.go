package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/api"
	"github.com/thenoetrevino/uptask/internal/config"
	"github.com/thenoetrevino/uptask/internal/credentials"
	"github.com/thenoetrevino/uptask/internal/database"
	"github.com/thenoetrevino/uptask/internal/events"
	"github.com/thenoetrevino/uptask/internal/query"
	authservice "github.com/thenoetrevino/uptask/internal/services/auth"
	noteservice "github.com/thenoetrevino/uptask/internal/services/note"
	projectservice "github.com/thenoetrevino/uptask/internal/services/project"
	taskservice "github.com/thenoetrevino/uptask/internal/services/task"
	teamservice "github.com/thenoetrevino/uptask/internal/services/team"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config
	Store  credentials.Store
	Client *api.Client
	Cache  *query.Cache
	Bus    *events.Bus
	Logger *slog.Logger

	// Service layer
	AuthService    authservice.Service
	ProjectService projectservice.Service
	TaskService    taskservice.Service
	NoteService    noteservice.Service
	TeamService    teamservice.Service

	ownsBus bool
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, store credentials.Store, opts ...Option) *App {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}
	hc := options.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	bus := options.bus
	ownsBus := bus == nil
	if ownsBus {
		bus = events.NewBus(logger)
	}

	client := api.New(cfg.APIURL, store,
		api.WithHTTPClient(hc),
		api.WithLogger(logger))
	cache := query.New(
		query.WithPublisher(bus),
		query.WithLogger(logger))

	return &App{
		Config: cfg,
		Store:  store,
		Client: client,
		Cache:  cache,
		Bus:    bus,
		Logger: logger,

		AuthService:    authservice.NewService(client, store, cache, logger),
		ProjectService: projectservice.NewService(client, cache, logger),
		TaskService:    taskservice.NewService(client, cache, logger),
		NoteService:    noteservice.NewService(client, cache),
		TeamService:    teamservice.NewService(client, cache),

		ownsBus: ownsBus,
	}
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	if a.ownsBus {
		a.Bus.Close()
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds the credential store selected by cfg. The closer
// releases the session database when one was opened.
func OpenStore(ctx context.Context, cfg *config.Config) (credentials.Store, io.Closer, error) {
	switch cfg.TokenStore {
	case config.TokenStoreMemory:
		return credentials.NewMemoryStore(), nopCloser{}, nil
	case config.TokenStoreSQLite:
		path, err := database.DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve session database path: %w", err)
		}
		db, err := database.InitDB(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open session database: %w", err)
		}
		return credentials.NewSQLiteStore(db), db, nil
	}
	return nil, nil, fmt.Errorf("%w: token_store %q", config.ErrInvalidConfig, cfg.TokenStore)
}
