package domain

import "errors"

// Sentinel errors returned by services and mapped to HTTP status codes
// at the handler layer. Wrap with fmt.Errorf("...: %w", err) to add
// detail; check with errors.Is.
var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a required field is missing or malformed.
	// The request was rejected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrStatusInUse means a catalog delete was blocked because at
	// least one job still carries the status name.
	ErrStatusInUse = errors.New("status in use")
)
