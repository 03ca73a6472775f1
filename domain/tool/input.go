package tool

import (
	"encoding/json"
	"strings"
)

// DecodeInput validates input against schema and unmarshals it into v.
// Failures are reported as validation errors attributed to toolName.
func DecodeInput(toolName string, schema Schema, input json.RawMessage, v any) error {
	if !isObject(input) {
		return ValidationFailed(toolName, "input must be a JSON object")
	}
	if err := schema.Validate(input); err != nil {
		return ValidationFailed(toolName, err.Error())
	}
	if err := json.Unmarshal(input, v); err != nil {
		return ValidationFailed(toolName, err.Error())
	}
	return nil
}

func isObject(input json.RawMessage) bool {
	if !json.Valid(input) {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(string(input)), "{")
}
