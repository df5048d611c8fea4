package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/database"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// application holds the shared dependencies built at startup
// and released on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	taskStore   store.TaskStore
	taskService service.TaskService
	taskHandler *api.TaskHandler
}

// newApplication builds Store -> Service -> Handler on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	if cfg == nil || db == nil {
		return nil, fmt.Errorf("config and database are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = database.NewTaskStore(db, logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.taskHandler = api.NewTaskHandler(app.taskService, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until a shutdown signal arrives and returns the exit code.
func (app *application) Run(ctx context.Context) int {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() error {
	if app.db == nil {
		return nil
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		return err
	}
	app.logger.Info("database connection closed")
	return nil
}
