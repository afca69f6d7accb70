// Package common defines shared sentinel errors used across foodkeeper
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors. sqlerr.Classify collapses driver failures
	// into these three kinds; the rest of the code never inspects SQLSTATEs.
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrInternal = errors.New("internal error")
)
