package grader

import "errors"

var (
	// ErrInvalidInput means the caller supplied an empty source sentence or
	// answer. Nothing is sent to the provider in that case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProviderUnreachable means the provider could not be reached at the
	// network level (DNS, connection refused, broken transport).
	ErrProviderUnreachable = errors.New("provider unreachable")

	// ErrProviderTimeout means no response arrived within the configured
	// deadline. The call is cancelled; no partial result is returned.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderError means the provider responded, but with an error
	// payload, a non-success status, or an unusable body.
	ErrProviderError = errors.New("provider error")
)
