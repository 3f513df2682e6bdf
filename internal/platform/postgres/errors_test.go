package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/salesacademy/academy-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, mapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		err := mapError(sql.ErrNoRows)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{Code: uniqueViolationCode}
		err := mapError(fmt.Errorf("insert failed: %w", pgErr))
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("other pg errors map to store failure", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{Code: "42P01"} // undefined_table
		err := mapError(pgErr)
		assert.ErrorIs(t, err, store.ErrStoreFailure)
		assert.NotErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("arbitrary errors map to store failure", func(t *testing.T) {
		t.Parallel()
		err := mapError(errors.New("connection reset"))
		assert.ErrorIs(t, err, store.ErrStoreFailure)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: uniqueViolationCode})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUniqueViolation(errors.New("not a pg error")))
	assert.False(t, isUniqueViolation(nil))
}
