package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrCapabilityUnavailable marks a backend that was never configured,
	// as opposed to one that failed at call time. Callers degrade to their
	// deterministic fallbacks when they see it.
	ErrCapabilityUnavailable = errors.New("capability unavailable")
)
