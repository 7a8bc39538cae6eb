package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrInvalidSample    = errors.New("invalid sample")

	// Computation errors
	ErrDegenerateInput = errors.New("degenerate input")
)

// NewSampleError reports a sample that failed validation at a given position.
func NewSampleError(sample string, index int, reason string) error {
	return fmt.Errorf("%w: %s[%d] %s", ErrInvalidSample, sample, index, reason)
}

// IsInputError reports whether err is caused by caller-supplied data rather than a computation failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrInvalidSample)
}

func IsDegenerateError(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}
