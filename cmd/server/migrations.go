package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/tasks-api/internal/platform/database"
)

// handleMigrations runs a single goose command against db.
// The schema version is logged after every successful command.
func handleMigrations(ctx context.Context, db *sqlx.DB, command string, logger *slog.Logger) error {
	if !database.IsValidMigrationCommand(command) {
		return fmt.Errorf("invalid migration command %q: expected one of up, down, status, version", command)
	}

	if err := database.Migrate(ctx, db, command, logger); err != nil {
		return err
	}

	version, err := database.SchemaVersion(ctx, db)
	if err != nil {
		return err
	}

	logger.Info("database schema version", slog.Int64("version", version))
	return nil
}
