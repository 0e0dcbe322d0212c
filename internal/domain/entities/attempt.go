package entities

import "time"

// Attempt is one graded exchange between learner and bot. Attempts are
// append-only: once written they are never mutated or deleted.
type Attempt struct {
	UserID       int64
	ExpectedText string
	GivenText    string
	Score        float64 // 0-100, one decimal
	CreatedAt    time.Time
}
