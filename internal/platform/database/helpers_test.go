package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/require"
)

// Test timeout to prevent long-running tests
const testTimeout = 5 * time.Second

const sqliteMemoryURL = "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"

// openSQLiteTestDB returns a migrated, private in-memory sqlite database.
func openSQLiteTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	db, err := Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    sqliteMemoryURL,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, MigrateUp, nil))
	return db
}

// checkIntegrationTestEnvironment reports whether DATABASE_URL points at a
// PostgreSQL instance for integration tests.
func checkIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// openPostgresTestDB returns a migrated PostgreSQL database with an empty tasks table.
func openPostgresTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	if !checkIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	db, err := Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		URL:          os.Getenv("DATABASE_URL"),
		MaxOpenConns: 5,
		MaxIdleConns: 5,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, MigrateUp, nil))

	clean := func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM tasks")
	}
	clean()
	t.Cleanup(clean)

	return db
}

func strPtr(s string) *string {
	return &s
}
