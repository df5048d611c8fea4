// Package database provides the SQL implementation of the store interfaces.
//
// It opens a sqlx connection pool for either PostgreSQL (through the pgx
// stdlib driver) or an embedded sqlite database (modernc.org/sqlite), runs the
// goose migrations embedded in the binary for the selected dialect, and maps
// driver-specific errors onto the store package's sentinel errors.
package database
