package domain

import (
	"fmt"
	"strings"
	"time"
)

// Account field constraints.
const (
	// MinUIDLength is the minimum length of a normalized learner identifier.
	MinUIDLength = 2

	// MinPasswordLength is the minimum length of an account password.
	MinPasswordLength = 4
)

// Account validation errors. All wrap ErrValidation.
var (
	ErrUsernameTooShort = fmt.Errorf("%w: username must be at least 2 characters", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 4 characters", ErrValidation)
)

// Account represents a registered learner of the academy platform.
//
// The UID is the normalized (lowercase, trimmed) form of the username the
// learner signed up with and is immutable once set. The password is compared
// verbatim at login; hashing it is an acknowledged gap that is out of scope
// here.
type Account struct {
	UID         string    `json:"uid"`
	Password    string    `json:"-"` // never expose in JSON
	DisplayName string    `json:"displayName"`
	Created     time.Time `json:"created"`
}

// NormalizeUID converts a raw username into its canonical uid form.
// The result is stable: normalizing an already-normalized uid is a no-op.
func NormalizeUID(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NewAccount creates an Account from the raw registration input.
// The username is normalized into the uid and the display name falls back
// to the raw username when blank. Returns a validation error if the
// normalized uid or the password is too short.
func NewAccount(username, password, displayName string) (*Account, error) {
	if strings.TrimSpace(displayName) == "" {
		displayName = username
	}

	account := &Account{
		UID:         NormalizeUID(username),
		Password:    password,
		DisplayName: displayName,
		Created:     time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks the Account against the registration constraints.
func (a *Account) Validate() error {
	if len(a.UID) < MinUIDLength {
		return ErrUsernameTooShort
	}
	if len(a.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
