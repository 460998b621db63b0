package domain

import "errors"

// Domain errors (no external dependencies). The HTTP boundary maps each kind
// to a status code; infrastructure failures are wrapped with %w by the
// adapters and surface as generic 500s.
var (
	// ErrValidation malformed or missing required input. Caller's fault.
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized credential or tenant mismatch. Deliberately carries no
	// detail about which factor failed (account enumeration resistance).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound referenced record absent.
	ErrNotFound = errors.New("resource not found")
)
