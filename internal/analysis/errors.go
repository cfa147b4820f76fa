// Package analysis compares one person's skills against a requirement list
// and classifies every requirement as a strength or a gap.
package analysis

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed member or requirement records that are
// rejected at the boundary before entering the pipeline.
var ErrInvalidInput = errors.New("invalid input")

// invalidInput wraps ErrInvalidInput with context about the offending record.
func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
