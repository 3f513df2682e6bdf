package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the statement-execution primitive the stores are built on.
// *sql.DB satisfies it directly; each statement commits independently, which
// is exactly the consistency model this system runs under (see the
// coordinator in internal/service for where that matters).
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
