package domain

import "errors"

var (
	// ErrValidation marks malformed or out-of-domain input. Surfaced to the
	// caller as-is; never retried.
	ErrValidation = errors.New("invalid input")

	// ErrIntegrity marks a state that should be impossible given the data
	// model invariants (e.g. a visit persisted with an empty checklist).
	// Treated as a storage-class failure, not a caller error.
	ErrIntegrity = errors.New("integrity violation")
)
