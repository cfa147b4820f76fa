// Package team orchestrates per-member gap analyses and folds them into
// team-level gaps, strengths, recommendations, and budget estimates.
package team

import "fmt"

// Error represents a failure while aggregating member results. Unlike a
// member-level failure, it indicates a programming defect rather than bad
// input and is surfaced to the caller as a hard error.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
