package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResultStoreRecordValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing uid is rejected before any statement", func(t *testing.T) {
		t.Parallel()

		db := newFakeDB()
		s := NewResultStore(db, nil)

		err := s.Record(context.Background(), &domain.Result{QuizID: "q1"})
		assert.ErrorIs(t, err, domain.ErrResultMissingUID)
		assert.Empty(t, db.execs)
	})

	t.Run("missing quiz id is rejected before any statement", func(t *testing.T) {
		t.Parallel()

		db := newFakeDB()
		s := NewResultStore(db, nil)

		err := s.Record(context.Background(), &domain.Result{UID: "alice"})
		assert.ErrorIs(t, err, domain.ErrResultMissingQuiz)
		assert.Empty(t, db.execs)
	})
}

func TestResultStoreDeleteByUID(t *testing.T) {
	t.Parallel()

	t.Run("zero affected rows is not an error", func(t *testing.T) {
		t.Parallel()

		db := newFakeDB()
		db.rowsAffected = 0
		s := NewResultStore(db, nil)

		assert.NoError(t, s.DeleteByUID(context.Background(), "ghost"))
	})

	t.Run("driver failure maps to store failure", func(t *testing.T) {
		t.Parallel()

		db := newFakeDB()
		db.failOn = 0
		db.failErr = errors.New("connection reset")
		s := NewResultStore(db, nil)

		err := s.DeleteByUID(context.Background(), "alice")
		assert.ErrorIs(t, err, store.ErrStoreFailure)
	})
}
