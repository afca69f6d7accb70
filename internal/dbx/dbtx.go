// Package dbx holds the minimal database abstraction the repositories are
// written against.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories. Both *sql.DB
// and *sql.Tx satisfy it, so a repository does not care whether it runs on
// the shared pool or inside a caller-managed transaction. Each repository
// method issues a single statement and returns the borrowed connection to
// the pool when it finishes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
