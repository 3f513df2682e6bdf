package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/salesacademy/academy-api/internal/store"
)

// PostgreSQL error codes.
const (
	// uniqueViolationCode is the PostgreSQL error code for unique
	// constraint violations.
	uniqueViolationCode = "23505"
)

// mapError classifies a database error into the store taxonomy. Anything
// without a specific mapping becomes a store.ErrStoreFailure so that raw
// engine errors never cross the store boundary unclassified. The original
// error text stays in the wrap for logging (where it is redacted); handlers
// never echo it to clients.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}

	return fmt.Errorf("%w: %v", store.ErrStoreFailure, err)
}

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// checkRowsAffected examines the number of rows affected by a statement and
// returns notFoundErr when none were. Used for UPDATE/DELETE statements
// where zero affected rows means the target does not exist.
func checkRowsAffected(result sql.Result, notFoundErr error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected: %v", store.ErrStoreFailure, err)
	}
	if rowsAffected == 0 {
		return notFoundErr
	}
	return nil
}
