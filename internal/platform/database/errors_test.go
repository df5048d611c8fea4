package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	plain := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("query: %w", sql.ErrNoRows), expected: store.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: uniqueViolationCode}, expected: store.ErrDuplicate},
		{name: "foreign key violation", err: &pgconn.PgError{Code: foreignKeyViolationCode}, expected: store.ErrInvalidEntity},
		{name: "check violation", err: &pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_title_not_blank"}, expected: store.ErrInvalidEntity},
		{name: "not null violation", err: &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"}, expected: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, MapError(nil))
	})

	t.Run("unmapped errors are returned unchanged", func(t *testing.T) {
		assert.Same(t, plain, MapError(plain))

		pgErr := &pgconn.PgError{Code: "42601"}
		assert.Equal(t, error(pgErr), MapError(pgErr))
	})
}

func TestMapError_SQLiteConstraints(t *testing.T) {
	db := openSQLiteTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO tasks (title, completed, created_at, updated_at) VALUES (NULL, 0, ?, ?)`, now(), now())
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrInvalidEntity, "not null violation")

	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (title, completed, created_at, updated_at) VALUES ('   ', 0, ?, ?)`, now(), now())
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrInvalidEntity, "check violation")

	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, completed, created_at, updated_at) VALUES (1, 'a', 0, ?, ?)`, now(), now())
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, completed, created_at, updated_at) VALUES (1, 'b', 0, ?, ?)`, now(), now())
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrDuplicate, "primary key violation")
}

type stubResult struct {
	rows int64
	err  error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(stubResult{rows: 1}, store.ErrTaskNotFound))
	assert.ErrorIs(t, CheckRowsAffected(stubResult{rows: 0}, store.ErrTaskNotFound), store.ErrTaskNotFound)
	assert.ErrorIs(t, CheckRowsAffected(stubResult{rows: 0}, nil), store.ErrNotFound)
	assert.Error(t, CheckRowsAffected(stubResult{err: errors.New("driver")}, nil))
	assert.Error(t, CheckRowsAffected(nil, nil))
}
