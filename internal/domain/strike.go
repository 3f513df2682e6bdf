package domain

import (
	"fmt"
	"time"
)

// Default reasons stamped on strike rows when the caller supplies none.
const (
	DefaultStrikeReason  = "Missed daily tasks"
	DefaultRemovalReason = "Removed by manager"
)

// Strike validation errors.
var (
	ErrStrikeMissingUID = fmt.Errorf("%w: strike requires a uid", ErrValidation)
	ErrEmptyStrikeBatch = fmt.Errorf("%w: strike batch must not be empty", ErrValidation)
)

// Strike is one entry in the disciplinary ledger. Strikes are soft-deleted:
// removal stamps RemovedAt and RemovedReason but keeps the row for audit.
// Physical deletion happens only through the account cascade.
type Strike struct {
	ID            int64      `json:"id"`
	UID           string     `json:"uid"`
	Reason        string     `json:"reason"`
	Date          time.Time  `json:"date"`
	RemovedAt     *time.Time `json:"removedAt,omitempty"`
	RemovedReason *string    `json:"removedReason,omitempty"`

	// DisplayName is populated only on admin listings joined with accounts.
	DisplayName string `json:"name,omitempty"`
}

// Active reports whether the strike still counts against the learner.
func (s *Strike) Active() bool {
	return s.RemovedAt == nil
}

// StrikeEntry is one element of a bulk strike insertion. Reason may be empty,
// in which case the batch default (or DefaultStrikeReason) applies.
type StrikeEntry struct {
	UID    string `json:"uid"`
	Reason string `json:"reason,omitempty"`
}

// StrikeSummary aggregates the active strikes of one learner.
type StrikeSummary struct {
	UID         string    `json:"uid"`
	DisplayName string    `json:"name"`
	StrikeCount int       `json:"strikeCount"`
	LastStrike  time.Time `json:"lastStrike"`
}
