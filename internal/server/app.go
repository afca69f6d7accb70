// Package server initializes and runs the application: it wires the
// database pool, repositories, services, and the HTTP API, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ymatsuzawa/foodkeeper/internal/hashx"
	"github.com/ymatsuzawa/foodkeeper/internal/logging"
	"github.com/ymatsuzawa/foodkeeper/internal/server/config"
	"github.com/ymatsuzawa/foodkeeper/internal/server/httpapi"
	"github.com/ymatsuzawa/foodkeeper/internal/server/repositories/foods"
	"github.com/ymatsuzawa/foodkeeper/internal/server/repositories/users"
	"github.com/ymatsuzawa/foodkeeper/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	userService := services.NewUserService(users.NewPostgresRepository(db), hashx.HashPassword)
	foodService := services.NewFoodService(foods.NewPostgresRepository(db))

	api := httpapi.NewServer(logger, userService, foodService)

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
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

	app.logger.Info(ctx, "starting server", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx, app.config.Addr); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	app.logger.Info(ctx, "server stopped")
}
