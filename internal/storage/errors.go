package storage

import "errors"

var (
	// ErrNotFound is returned by Load when no state has ever been persisted.
	ErrNotFound = errors.New("state not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
