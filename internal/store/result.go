package store

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
)

// MaxResultRows caps the cross-learner result listing to bound response
// size. Per-learner listings are not capped.
const MaxResultRows = 500

// ResultStore defines the interface for the append-only quiz result ledger.
type ResultStore interface {
	// Record appends a new result as a single atomic insert and fills in
	// the generated ID. A zero Date is stamped with the current time.
	Record(ctx context.Context, result *domain.Result) error

	// ListByUID returns all results for one learner, newest first.
	ListByUID(ctx context.Context, uid string) ([]*domain.Result, error)

	// ListAll returns results across all learners joined with the learner
	// display name, newest first, capped at MaxResultRows.
	ListAll(ctx context.Context) ([]*domain.Result, error)

	// DeleteByUID removes all results for one learner. Only the account
	// cascade and the progress reset call this; individual rows are never
	// deleted.
	DeleteByUID(ctx context.Context, uid string) error
}
