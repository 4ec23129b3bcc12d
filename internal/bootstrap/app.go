package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tijaniyah/companion/config"
	"github.com/tijaniyah/companion/internal/adapters/offline"
	"github.com/tijaniyah/companion/internal/apiclient"
	"github.com/tijaniyah/companion/internal/data"
	"github.com/tijaniyah/companion/internal/ports"
	"github.com/tijaniyah/companion/internal/service"
)

// App holds the wired client core.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Store    ports.KeyValueStore
	Client   *apiclient.Client
	Session  *service.SessionService
	Journal  *service.JournalService
	Settings *service.SettingsService
	Overview *service.OverviewService

	closeStore func() error
}

// AppOptions configures NewApp.
type AppOptions struct {
	Config config.AppConfig
	Logger *slog.Logger
	// Store overrides the configured storage driver.
	Store ports.KeyValueStore
	// APIOptions is applied on top of the options derived from Config.API.
	APIOptions func(*apiclient.Options)
}

// NewApp opens storage, constructs the API client and services, loads the persisted
// token and restores the session.
func NewApp(ctx context.Context, opts AppOptions) (*App, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store, closeStore := opts.Store, func() error { return nil }
	if store == nil {
		var err error
		store, closeStore, err = NewKVStore(ctx, StorageConfig{Storage: cfg.Storage, Redis: cfg.Redis, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
	}

	app, err := wire(cfg, logger, store, opts.APIOptions)
	if err != nil {
		return nil, errors.Join(err, closeStore())
	}
	app.closeStore = closeStore

	app.Client.LoadToken(ctx)
	st := app.Session.Restore(ctx)
	logger.DebugContext(ctx, "session restored", "status", st.Status)
	return app, nil
}

func wire(cfg config.AppConfig, logger *slog.Logger, store ports.KeyValueStore, tweak func(*apiclient.Options)) (*App, error) {
	apiOpts := apiclient.Options{
		BaseURL:             cfg.API.BaseURL,
		Timeout:             cfg.API.Timeout,
		Store:               store,
		RetryLimit:          cfg.API.RetryLimit,
		RetryBackoff:        cfg.API.RetryBackoff,
		RetryStatuses:       cfg.API.RetryStatuses,
		AuthFailureStatuses: cfg.API.AuthFailureStatuses,
		Logger:              logger.With("component", "apiclient"),
	}
	if tweak != nil {
		tweak(&apiOpts)
	}
	client, err := apiclient.New(apiOpts)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	var accounts ports.AccountDirectory
	if cfg.Auth.OfflineAccountsEnabled {
		dir, dirErr := offline.NewDirectory(offline.Config{
			Store:            data.NewAccountRepo(store),
			SeedDemoAccounts: cfg.Auth.SeedDemoAccounts,
			Logger:           logger,
		})
		if dirErr != nil {
			return nil, fmt.Errorf("create offline directory: %w", dirErr)
		}
		accounts = dir
	}

	session, err := service.NewSessionService(service.SessionServiceOptions{
		API:      client,
		Sessions: data.NewSessionRepo(store),
		Accounts: accounts,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	cache := data.NewJSONRepo(store)
	journal, err := service.NewJournalService(service.JournalServiceOptions{API: client, Cache: cache, Logger: logger})
	if err != nil {
		return nil, err
	}
	overview, err := service.NewOverviewService(service.OverviewServiceOptions{
		Feed:    client,
		Journal: journal,
		Chat:    client,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Client:   client,
		Session:  session,
		Journal:  journal,
		Settings: service.NewSettingsService(cache),
		Overview: overview,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a == nil || a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}
