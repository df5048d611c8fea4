package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the goose version table.
const MigrationTableName = "schema_migrations"

// Migration commands accepted by Migrate.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// goose keeps its dialect, table name and filesystem in package globals.
var gooseMu sync.Mutex

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level. It does not exit; goose returns the error to Migrate.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// IsValidMigrationCommand reports whether command is accepted by Migrate.
func IsValidMigrationCommand(command string) bool {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus, MigrateVersion:
		return true
	}
	return false
}

// migrationSource returns the goose dialect and embedded directory for driver.
func migrationSource(driver string) (dialect, dir string, err error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", "migrations/postgres", nil
	case config.DriverSQLite:
		return "sqlite3", "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate runs a goose command against db using the migrations embedded for
// its driver.
func Migrate(ctx context.Context, db *sqlx.DB, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "migrations"))

	if !IsValidMigrationCommand(command) {
		return fmt.Errorf("unknown migration command %q", command)
	}

	dialect, dir, err := migrationSource(db.DriverName())
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(MigrationTableName)
	goose.SetLogger(&slogGooseLogger{logger: logger})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	logger.Info("running migration command",
		slog.String("command", command),
		slog.String("dialect", dialect))

	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, db.DB, dir)
	case MigrateDown:
		err = goose.DownContext(ctx, db.DB, dir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, db.DB, dir)
	case MigrateVersion:
		err = goose.VersionContext(ctx, db.DB, dir)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("migration command completed", slog.String("command", command))
	return nil
}

// SchemaVersion returns the current goose version of db.
func SchemaVersion(ctx context.Context, db *sqlx.DB) (int64, error) {
	dialect, _, err := migrationSource(db.DriverName())
	if err != nil {
		return 0, err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db.DB)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
