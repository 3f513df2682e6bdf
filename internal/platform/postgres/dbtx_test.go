package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// execCall records one ExecContext invocation.
type execCall struct {
	query string
	args  []any
}

// fakeResult implements sql.Result with a fixed affected-row count.
type fakeResult int64

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return int64(r), nil }

// fakeDB implements store.DBTX for unit tests over the exec-only store
// paths. Query methods fail loudly: the behaviors tested against it must
// not read.
type fakeDB struct {
	execs        []execCall
	rowsAffected int64
	// failOn makes the i-th ExecContext call (0-based) return err.
	failOn  int
	failErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{rowsAffected: 1, failOn: -1}
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	call := len(f.execs)
	f.execs = append(f.execs, execCall{query: query, args: args})
	if f.failErr != nil && call == f.failOn {
		return nil, f.failErr
	}
	return fakeResult(f.rowsAffected), nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("unexpected QueryContext call")
}

func (f *fakeDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	panic("unexpected QueryRowContext call")
}
