// Package main implements the entry point for the tasks API server, which
// exposes CRUD operations over a single table of to-do items.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to a config file (default: ./config.yaml if present)")
	migrateCmd := flag.String("migrate", "", "Run a migration command (up, down, status, version) and exit")
	flag.Parse()

	os.Exit(run(context.Background(), *configFile, *migrateCmd))
}

// run wires the application and blocks until it stops.
// The returned value is the process exit code.
func run(ctx context.Context, configFile, migrateCmd string) int {
	cfg, l, err := initializeApp(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		return 1
	}

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		l.Error("failed to set up database", slog.String("error", err.Error()))
		return 1
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		if err := handleMigrations(ctx, db, migrateCmd, l); err != nil {
			l.Error("migration command failed",
				slog.String("command", migrateCmd),
				slog.String("error", err.Error()))
			return 1
		}
		return 0
	}

	if cfg.Database.AutoMigrate {
		if err := handleMigrations(ctx, db, "up", l); err != nil {
			l.Error("failed to apply migrations", slog.String("error", err.Error()))
			_ = db.Close()
			return 1
		}
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		l.Error("failed to build application", slog.String("error", err.Error()))
		_ = db.Close()
		return 1
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp(configFile string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate))

	return cfg, l, nil
}
