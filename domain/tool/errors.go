package tool

import "errors"

// Domain errors for the tool system.
var (
	// ErrEmptyName indicates a tool was created with an empty name.
	ErrEmptyName = errors.New("tool name cannot be empty")

	// ErrNoHandler indicates a tool was created without a handler.
	ErrNoHandler = errors.New("tool has no handler")

	// ErrToolNotFound indicates the requested tool was not found.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolExists indicates a tool with the same name already exists.
	ErrToolExists = errors.New("tool already exists")

	// ErrInvalidSchema indicates a schema document could not be compiled.
	ErrInvalidSchema = errors.New("invalid json schema")
)

// ErrorKind classifies why an invocation failed.
type ErrorKind string

const (
	// KindValidation covers bad or missing input and remote shape mismatches.
	KindValidation ErrorKind = "validation"

	// KindAPI covers remote responses with a non-success status.
	KindAPI ErrorKind = "api"

	// KindTransport covers calls that could not be completed.
	KindTransport ErrorKind = "transport"
)

// Error is a classified invocation failure. Message is the exact text
// returned to the caller.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError returns a validation failure with the given message.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewAPIError returns a remote status failure with the given message.
func NewAPIError(message string) *Error {
	return &Error{Kind: KindAPI, Message: message}
}

// NewTransportError returns a transport failure wrapping cause.
func NewTransportError(message string, cause error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: cause}
}

// KindOf returns the ErrorKind of err, or an empty kind if err is not a
// classified *Error.
func KindOf(err error) ErrorKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}
