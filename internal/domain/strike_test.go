package domain_test

import (
	"testing"
	"time"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStrikeActive(t *testing.T) {
	t.Parallel()

	strike := &domain.Strike{UID: "alice", Reason: domain.DefaultStrikeReason}
	assert.True(t, strike.Active())

	removedAt := time.Now().UTC()
	reason := domain.DefaultRemovalReason
	strike.RemovedAt = &removedAt
	strike.RemovedReason = &reason
	assert.False(t, strike.Active())
}

func TestStrikeValidationErrorsWrapValidation(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, domain.ErrStrikeMissingUID, domain.ErrValidation)
	assert.ErrorIs(t, domain.ErrEmptyStrikeBatch, domain.ErrValidation)
}
