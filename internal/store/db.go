package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DBTX abstracts the database access layer. It is implemented by both
// *sqlx.DB and *sqlx.Tx, so store implementations work the same way
// inside and outside a transaction.
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)
