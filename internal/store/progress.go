package store

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
)

// ProgressStore defines the interface for the per-learner progress document.
// Each learner has at most one document; writes replace it whole.
type ProgressStore interface {
	// Get returns the stored document, or the empty document if none
	// exists. Absence is not an error.
	Get(ctx context.Context, uid string) (domain.ProgressDocument, error)

	// Save upserts the whole document: insert if absent, otherwise
	// overwrite. Saving the same document twice yields the same stored
	// state. A nil document is stored as the empty document.
	Save(ctx context.Context, uid string, doc domain.ProgressDocument) error

	// Ensure creates the row with the empty document if it does not exist
	// yet, and leaves an existing row untouched. Used for lazy creation on
	// first access.
	Ensure(ctx context.Context, uid string) error

	// Reset overwrites the document with the empty value without deleting
	// the row. A missing row is a no-op.
	Reset(ctx context.Context, uid string) error

	// Delete removes the row. A missing row is a no-op; the account cascade
	// must stay tolerant of already-removed dependents.
	Delete(ctx context.Context, uid string) error
}
