package api

import (
	"time"

	"github.com/salesacademy/academy-api/internal/domain"
)

// Common request/response structures.

// LoginRequest defines the payload for the learner login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful learner login payload. The progress
// document rides along so the client starts with current state.
type LoginResponse struct {
	OK          bool                    `json:"ok"`
	UID         string                  `json:"uid"`
	DisplayName string                  `json:"displayName"`
	UserData    domain.ProgressDocument `json:"userData"`
}

// AdminLoginRequest defines the payload for the manager login endpoint.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse carries the manager session token.
type AdminLoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// CreateAccountRequest defines the payload for account registration.
// Length rules live in the domain, after uid normalization.
type CreateAccountRequest struct {
	Username    string `json:"username"    validate:"required"`
	Password    string `json:"password"    validate:"required"`
	DisplayName string `json:"displayName"`
}

// CreateAccountResponse echoes the normalized identity of the new account.
type CreateAccountResponse struct {
	OK          bool   `json:"ok"`
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
}

// SaveProgressRequest wraps the replacement progress document.
type SaveProgressRequest struct {
	Data domain.ProgressDocument `json:"data"`
}

// ProgressResponse wraps a progress document read.
type ProgressResponse struct {
	Data domain.ProgressDocument `json:"data"`
}

// RecordResultRequest defines the payload for appending a quiz result.
// A zero date means "now".
type RecordResultRequest struct {
	UID      string    `json:"uid"   validate:"required"`
	QuizID   string    `json:"qid"   validate:"required"`
	QuizName string    `json:"qname"`
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Pct      int       `json:"pct"`
	Time     int       `json:"time"`
	Passed   bool      `json:"passed"`
	Date     time.Time `json:"date"`
	Num      int       `json:"num"`
}

// AddStrikeRequest defines the payload for adding a single strike.
// The uid requirement is enforced by the strike ledger itself.
type AddStrikeRequest struct {
	UID    string `json:"uid"`
	Reason string `json:"reason"`
}

// BulkStrikeRequest defines the payload for the bulk strike endpoint.
// Emptiness is checked by the ledger before any row is written.
type BulkStrikeRequest struct {
	Users  []domain.StrikeEntry `json:"users"`
	Reason string               `json:"reason"`
}

// RemoveStrikeRequest defines the optional body of the strike removal
// endpoint.
type RemoveStrikeRequest struct {
	Reason string `json:"reason"`
}

// OKResponse is the generic success acknowledgement.
type OKResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count,omitempty"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	OK        bool  `json:"ok"`
	Timestamp int64 `json:"timestamp"`
}
