// Package server initializes and runs the Lockbox API server. It picks
// a storage backend from configuration, wires the services into the HTTP
// layer, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lockboxapp/lockbox/internal/logging"
	"github.com/lockboxapp/lockbox/internal/server/config"
	"github.com/lockboxapp/lockbox/internal/server/httpapi"
	"github.com/lockboxapp/lockbox/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  storage.RepositoryManager
	api    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger()

	var store storage.RepositoryManager
	if cfg.DatabaseDSN == "" {
		logger.Info(ctx, "no database DSN configured, using in-memory storage")
		store = storage.NewInMemoryRepositoryManager()
	} else {
		var err error
		store, err = storage.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	api := httpapi.NewServer(cfg, logger, store)

	return &App{config: cfg, logger: logger, store: store, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.api.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
