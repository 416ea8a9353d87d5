package domain

import "errors"

// Sentinel errors surfaced by the analytics engines. Wrap with %w so
// callers can match with errors.Is.
var (
	// ErrInvalidParameter rejects out-of-range configuration (service
	// level, confidence width, horizon) or malformed history before any
	// computation starts.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData means the history is too short for a stable
	// fit. It is never downgraded to a default forecast.
	ErrInsufficientData = errors.New("insufficient history")
)
