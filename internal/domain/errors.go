package domain

import "errors"

// Error kinds surfaced by the core. Callers match them with errors.Is; the
// HTTP layer owns the mapping to status codes.
var (
	// ErrInvalidArgument reports malformed input independent of numeric
	// range, e.g. an empty name or a NaN coordinate component.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a numeric value outside its documented bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrNotFound reports a mutation that referenced an absent identity.
	// Lookups return absence as a normal value, not this error.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports an attempt to add an identity that already exists.
	ErrConflict = errors.New("conflict")
)
