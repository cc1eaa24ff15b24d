package app

import (
	"context"
	"fmt"
	"time"

	"github.com/tejaswik02/campusplace/internal/api"
	"github.com/tejaswik02/campusplace/internal/config"
	"github.com/tejaswik02/campusplace/internal/store"
)

// App is the dependency container for the CLI application
type App struct {
	Store  *store.Store
	Config *config.Config
	API    *api.Client
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Open the local durable store
	st, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	cfg := config.AppConfig
	client := api.New(cfg.BackendURL, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)

	return &App{
		Store:  st,
		Config: cfg,
		API:    client,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// RequireSession loads the credential stored under key, attaches it to the
// API client and returns it. Missing credentials are ErrNotLoggedIn.
func (a *App) RequireSession(key string) (string, error) {
	token, ok := a.Store.SessionToken(key)
	if !ok {
		return "", ErrNotLoggedIn
	}
	a.API.SetToken(token)
	return token, nil
}

// DebounceInterval returns the configured draft autosave quiet window.
func (a *App) DebounceInterval() time.Duration {
	ms := a.Config.DraftDebounceMillis
	if ms <= 0 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}
