package api

import (
	"errors"
	"net/http"

	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/service/auth"
	"github.com/salesacademy/academy-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// This keeps internal error types from leaking into wire behavior.
func MapErrorToStatusCode(err error) int {
	var partial *store.PartialFailureError

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrInvalidCredentials),
		errors.Is(err, auth.ErrEmptyPassword),
		errors.Is(err, auth.ErrInvalidPassword),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	// Partial failures must outrank their wrapped store error: a cascade
	// that died mid-sequence is an operator problem, not a 4xx.
	case errors.As(err, &partial):
		return http.StatusInternalServerError

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var partial *store.PartialFailureError

	switch {
	case errors.Is(err, domain.ErrUsernameTooShort):
		return "Username must be at least 2 characters."
	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Password must be at least 4 characters."
	case errors.Is(err, domain.ErrStrikeMissingUID):
		return "User ID required."
	case errors.Is(err, domain.ErrEmptyStrikeBatch):
		return "No users provided."
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request data."

	case errors.Is(err, store.ErrInvalidCredentials):
		return "Invalid username or password. Check your credentials."
	case errors.Is(err, auth.ErrEmptyPassword):
		return "Please enter the manager password."
	case errors.Is(err, auth.ErrInvalidPassword):
		return "Incorrect manager password."
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		return "Invalid or expired manager session."

	case errors.As(err, &partial):
		return "Operation partially completed; manual repair may be required."

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists. Choose a different one."
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, store.ErrStrikeNotFound):
		return "Strike not found."
	case store.IsNotFoundError(err):
		return "Not found."
	case store.IsDuplicateError(err):
		return "Already exists."

	default:
		return "Server error. Please try again later."
	}
}

// HandleAPIError maps err to a status and safe message and writes the
// response, logging the underlying error. fallbackMessage overrides the
// derived message when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if fallbackMessage != "" && status == http.StatusInternalServerError {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
