package tool

import (
	"encoding/json"
	"time"
)

// Result contains the output of a tool invocation.
type Result struct {
	// Output is the serialized Outcome.
	Output json.RawMessage `json:"output"`

	// Duration is how long the invocation took.
	Duration time.Duration `json:"duration"`

	// Error is the classified failure reported in Output, if any. It is
	// informational for middleware; Execute still returns a nil error.
	Error error `json:"-"`
}

// NewResult creates a result with the given output.
func NewResult(output json.RawMessage) Result {
	return Result{Output: output}
}

// IsError returns true if the result represents a failed invocation.
func (r Result) IsError() bool {
	return r.Error != nil
}

// OutputString returns the output as a string for convenience.
func (r Result) OutputString() string {
	return string(r.Output)
}

// Outcome decodes the output into an Outcome.
func (r Result) Outcome() (Outcome, error) {
	var o Outcome
	if err := json.Unmarshal(r.Output, &o); err != nil {
		return Outcome{}, err
	}
	return o, nil
}
