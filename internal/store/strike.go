package store

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
)

// StrikeStore defines the interface for the disciplinary strike ledger:
// append-only with soft delete and aggregate summaries.
type StrikeStore interface {
	// Add appends an active strike for the learner, stamped with the
	// current time. An empty reason falls back to
	// domain.DefaultStrikeReason. Returns domain.ErrStrikeMissingUID if the
	// uid is empty.
	Add(ctx context.Context, uid, reason string) error

	// AddBulk appends one strike per entry, all sharing a single timestamp
	// captured at the start of the call so the batch is attributable as one
	// event. Entries without a reason use defaultReason, then
	// domain.DefaultStrikeReason. Returns domain.ErrEmptyStrikeBatch before
	// any write if entries is empty. Insertion is sequential with no
	// cross-entry atomicity: a mid-batch failure returns a
	// *PartialFailureError naming the committed prefix. The int result is
	// the number of rows actually inserted.
	AddBulk(ctx context.Context, entries []domain.StrikeEntry, defaultReason string) (int, error)

	// Remove soft-deletes the strike: it stamps RemovedAt with the current
	// time and RemovedReason with reason (or domain.DefaultRemovalReason).
	// Removing an already-removed strike silently overwrites the removal
	// metadata; this mirrors the historical behavior and is covered by
	// tests. Returns ErrStrikeNotFound only when no row has that id at all.
	Remove(ctx context.Context, id int64, reason string) error

	// ListActive returns strikes with no removal stamp, newest first.
	// With uid == "" it spans all learners and joins the display name.
	ListActive(ctx context.Context, uid string) ([]*domain.Strike, error)

	// ListAll returns strikes including removed ones, newest first.
	// With uid == "" it spans all learners and joins the display name.
	ListAll(ctx context.Context, uid string) ([]*domain.Strike, error)

	// Summarize aggregates active strikes per learner, ordered by strike
	// count descending then last strike descending. Learners with no active
	// strikes are absent.
	Summarize(ctx context.Context) ([]*domain.StrikeSummary, error)

	// CountActive returns the active strike count per uid for every learner
	// that has at least one active strike.
	CountActive(ctx context.Context) (map[string]int, error)

	// DeleteByUID physically removes all strikes for one learner, removed
	// ones included. Only the account cascade and the progress reset call
	// this.
	DeleteByUID(ctx context.Context, uid string) error
}
