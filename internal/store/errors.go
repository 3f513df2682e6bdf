package store

import (
	"errors"
	"fmt"
	"strings"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrStoreFailure is returned when the underlying persistence engine
	// fails. Implementations wrap driver errors in it so engine internals
	// never cross the store boundary unclassified.
	ErrStoreFailure = errors.New("storage operation failed")

	// ErrInvalidCredentials is returned on a failed credential check.
	// Unknown username and wrong password deliberately collapse into this
	// single error so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Entity-specific "not found" errors.

	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrStrikeNotFound indicates the requested strike does not exist.
	ErrStrikeNotFound = fmt.Errorf("%w: strike", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrUsernameExists indicates an account with the normalized uid
	// already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// PartialFailureError reports a multi-statement operation that failed after
// some of its statements had already committed. There is no rollback in this
// system: each statement commits independently, so a mid-sequence failure
// leaves a partially-applied state that operators must be able to detect and
// repair. Completed lists the steps that committed before the failure.
type PartialFailureError struct {
	Op        string   // the multi-statement operation, e.g. "learner delete"
	Completed []string // steps that committed before the failure
	Err       error    // the failure that interrupted the sequence
}

// Error implements the error interface for PartialFailureError.
func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s partially completed (committed: %s): %v",
		e.Op, strings.Join(e.Completed, ", "), e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
