package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/salesacademy/academy-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitySpecificErrorsWrapGenericOnes(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrAccountNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrStrikeNotFound))
	assert.True(t, store.IsDuplicateError(store.ErrUsernameExists))

	wrapped := fmt.Errorf("context: %w", store.ErrAccountNotFound)
	assert.True(t, store.IsNotFoundError(wrapped))

	assert.False(t, store.IsNotFoundError(store.ErrStoreFailure))
	assert.False(t, store.IsDuplicateError(store.ErrStoreFailure))
}

func TestPartialFailureError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("%w: connection reset", store.ErrStoreFailure)
	err := &store.PartialFailureError{
		Op:        "learner delete",
		Completed: []string{"delete strikes", "delete results"},
		Err:       cause,
	}

	t.Run("message names op and committed steps", func(t *testing.T) {
		t.Parallel()
		msg := err.Error()
		assert.Contains(t, msg, "learner delete partially completed")
		assert.Contains(t, msg, "delete strikes, delete results")
		assert.Contains(t, msg, "connection reset")
	})

	t.Run("unwraps to the interrupting failure", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, err, store.ErrStoreFailure)
	})

	t.Run("recoverable through errors.As after wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("request failed: %w", err)

		var partial *store.PartialFailureError
		require.True(t, errors.As(wrapped, &partial))
		assert.Equal(t, "learner delete", partial.Op)
		assert.Equal(t, []string{"delete strikes", "delete results"}, partial.Completed)
	})
}
