package domain

import (
	"fmt"
	"time"
)

// Result validation errors.
var (
	ErrResultMissingUID  = fmt.Errorf("%w: result requires a uid", ErrValidation)
	ErrResultMissingQuiz = fmt.Errorf("%w: result requires a quiz id", ErrValidation)
)

// Result is one entry in the append-only quiz result ledger. Rows are never
// updated or deleted individually; they only disappear when the owning
// account is cascade-deleted.
type Result struct {
	ID       int64     `json:"id"`
	UID      string    `json:"uid"`
	QuizID   string    `json:"qid"`
	QuizName string    `json:"qname"`
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Pct      int       `json:"pct"`
	Time     int       `json:"time"` // seconds spent on the attempt
	Passed   bool      `json:"passed"`
	Date     time.Time `json:"date"`
	Num      int       `json:"num"` // attempt number reported by the client

	// DisplayName is populated only on admin listings joined with accounts.
	DisplayName string `json:"name,omitempty"`
}

// Validate checks the fields required before a result may be appended.
// A zero Date is allowed; the store stamps it with the current time.
func (r *Result) Validate() error {
	if r.UID == "" {
		return ErrResultMissingUID
	}
	if r.QuizID == "" {
		return ErrResultMissingQuiz
	}
	return nil
}
