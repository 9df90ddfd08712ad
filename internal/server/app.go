// Package server initializes and runs the login gateway: it selects a
// credential store backend, wires the sessions service into the HTTP layer
// and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akarpov87/authgate/internal/logging"
	"github.com/akarpov87/authgate/internal/server/config"
	"github.com/akarpov87/authgate/internal/server/sessions"
	"github.com/akarpov87/authgate/internal/server/users"
	"github.com/akarpov87/authgate/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *web.Server
	db     *sql.DB
}

// NewApp validates configuration and builds the full object graph. A missing
// secret key aborts startup here, before any listener is opened.
func NewApp(cfg *config.Config) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewDefault(os.Stdout, cfg.Mode == "release", "service", "authgate")

	var (
		repo users.Repository
		db   *sql.DB
	)

	if cfg.DatabaseDSN != "" {
		pg, conn, err := users.OpenPostgres(context.Background(), cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("store init error: %w", err)
		}
		repo = pg
		db = conn
	} else {
		fixture, err := users.DefaultFixture(cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("fixture error: %w", err)
		}
		repo = users.NewMemoryRepositoryFromFixture(fixture)
		logger.Warn(context.Background(), "using in-memory credential store with development fixture")
	}

	svc := sessions.NewService(repo, cfg)

	srv, err := web.NewServer(cfg, logger, svc)
	if err != nil {
		return nil, fmt.Errorf("server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, server: srv, db: db}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
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

	app.logger.Info(ctx, "Starting app...", "addr", app.config.Addr, "mode", app.config.Mode)

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing database", "error", err)
		}
	}
}
