package store

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
)

// AccountStore defines the interface for account persistence — the identity
// directory of the platform. All lookups operate on normalized uids.
type AccountStore interface {
	// Create saves a new account to the store. The account must already be
	// normalized and validated (see domain.NewAccount).
	// Returns ErrUsernameExists if the uid is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// VerifyCredentials normalizes the username and looks up the account by
	// the exact (uid, password) pair.
	// Returns ErrInvalidCredentials on any mismatch; unknown user and wrong
	// password are not distinguished.
	VerifyCredentials(ctx context.Context, username, password string) (*domain.Account, error)

	// List returns all accounts in unspecified order. Passwords are not
	// included in the returned records.
	List(ctx context.Context) ([]*domain.Account, error)

	// Delete removes the account row for the given uid.
	// Callers must have already removed all dependent rows; the coordinator
	// owns that ordering. Returns ErrAccountNotFound if no row matched.
	Delete(ctx context.Context, uid string) error
}
