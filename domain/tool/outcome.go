package tool

import (
	"encoding/json"
	"errors"
)

// Outcome is the envelope every tool returns to its caller. Exactly one of
// a success Data payload or a failure Message is meaningful; Message is also
// set on success as a human-readable confirmation.
type Outcome struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Message   string    `json:"message,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

// Succeed returns a successful outcome.
func Succeed(data any, message string) Outcome {
	return Outcome{Success: true, Data: data, Message: message}
}

// Fail returns a failed outcome for err. Unclassified errors are reported
// as transport failures.
func Fail(err error) Outcome {
	kind := KindOf(err)
	if kind == "" {
		kind = KindTransport
	}
	return Outcome{Success: false, Message: err.Error(), ErrorKind: kind}
}

// Respond checks o against schema and encodes it into a Result. An outcome
// that violates the schema is replaced by a validation failure.
func Respond(toolName string, schema Schema, o Outcome) Result {
	raw, err := json.Marshal(o)
	if err == nil && o.Success {
		err = schema.Validate(raw)
		if err != nil {
			err = ValidationFailed(toolName, "output: "+err.Error())
		}
	}
	if err != nil {
		o = Fail(asToolError(err))
		raw, _ = json.Marshal(o)
	}

	result := Result{Output: raw}
	if !o.Success {
		result.Error = &Error{Kind: o.ErrorKind, Message: o.Message}
	}
	return result
}

// ValidationFailed returns the validation error reported when input or
// output does not satisfy a tool's schema.
func ValidationFailed(toolName, detail string) *Error {
	return NewValidationError("Tool validation failed for " + toolName + ": " + detail)
}

func asToolError(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return NewValidationError(err.Error())
}

// DecodeData unmarshals the data payload of a result into v.
func (r Result) DecodeData(v any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Output, &envelope); err != nil {
		return err
	}
	if len(envelope.Data) == 0 {
		return errors.New("result has no data")
	}
	return json.Unmarshal(envelope.Data, v)
}
