package database

import (
	"context"
	"testing"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_UpDownSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, URL: sqliteMemoryURL}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, MigrateUp, nil))

	version, err := SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// up is idempotent
	require.NoError(t, Migrate(ctx, db, MigrateUp, nil))
	require.NoError(t, Migrate(ctx, db, MigrateStatus, nil))
	require.NoError(t, Migrate(ctx, db, MigrateVersion, nil))

	require.NoError(t, Migrate(ctx, db, MigrateDown, nil))

	version, err = SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	var tables int
	require.NoError(t, db.GetContext(ctx, &tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`))
	assert.Zero(t, tables)
}

func TestMigrate_InvalidCommand(t *testing.T) {
	db := openSQLiteTestDB(t)

	err := Migrate(context.Background(), db, "sideways", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestMigrationSource(t *testing.T) {
	dialect, dir, err := migrationSource(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialect)
	assert.Equal(t, "migrations/postgres", dir)

	dialect, dir, err = migrationSource(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", dialect)
	assert.Equal(t, "migrations/sqlite", dir)

	_, _, err = migrationSource("mysql")
	assert.Error(t, err)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	for _, dir := range []string{"migrations/postgres", "migrations/sqlite"} {
		entries, err := migrationsFS.ReadDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "nope", URL: "x"}, nil)
	assert.Error(t, err)
}
