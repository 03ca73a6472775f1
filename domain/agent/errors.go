package agent

import "errors"

// Domain errors for agent profiles.
var (
	// ErrProfileNotFound indicates no profile has the requested name.
	ErrProfileNotFound = errors.New("agent profile not found")

	// ErrInvalidProfile indicates a profile is missing required fields.
	ErrInvalidProfile = errors.New("invalid agent profile")
)
