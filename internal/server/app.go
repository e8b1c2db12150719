// Package server initializes and runs the Pinpoint API server: it opens the
// database, runs migrations, wires the services, and serves the HTTP API
// until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avolkovs/pinpoint/internal/logging"
	"github.com/avolkovs/pinpoint/internal/server/config"
	"github.com/avolkovs/pinpoint/internal/server/httpapi"
	"github.com/avolkovs/pinpoint/internal/server/repositories/repomanager"
	"github.com/avolkovs/pinpoint/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.SecretKey == "" {
		return nil, errors.New("secret key must not be empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	svc := &httpapi.Services{
		Accounts: services.NewAccountService(db, rm, cfg),
		Pins:     services.NewPinService(db, rm),
		Posts:    services.NewPostService(db, rm),
		Comments: services.NewCommentService(db, rm),
		Shares:   services.NewShareService(db, rm),
		Media:    services.NewMediaService(cfg),
	}

	router := httpapi.NewRouter(cfg, logger, svc)
	server := httpapi.NewServer(cfg.EndpointAddr, router, logger)

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
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

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server error", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
