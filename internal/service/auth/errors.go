// Package auth handles the administrator surface: the manager password
// check and the session tokens that gate the admin-only endpoints.
package auth

import "errors"

// Admin authentication errors.
var (
	// ErrEmptyPassword is returned when no password was supplied at all.
	ErrEmptyPassword = errors.New("password is required")

	// ErrInvalidPassword is returned when the manager password is wrong.
	ErrInvalidPassword = errors.New("invalid manager password")

	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken is returned when a session token has expired.
	ErrExpiredToken = errors.New("session token expired")
)
