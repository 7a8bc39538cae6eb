package ttest

import (
	"fmt"

	"hypotest/domain/core"
)

// InsufficientDataError is returned when a sample has fewer than two observations,
// leaving its variance undefined.
type InsufficientDataError struct {
	Sample string
	Size   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s has %d observation(s), need at least %d", e.Sample, e.Size, MinSampleSize)
}

func (e *InsufficientDataError) Unwrap() error { return core.ErrInsufficientData }

// DegenerateInputError is returned when the standard error (or pooled deviation) is zero
// or not finite, so the statistic would divide by zero.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}

func (e *DegenerateInputError) Unwrap() error { return core.ErrDegenerateInput }
