package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// ToolName adds a tool name field.
func ToolName(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("tool", name)
	}
}

// Action adds the requested tool action.
func Action(action string) Field {
	return func(e *bolt.Event) *bolt.Event {
		if action == "" {
			return e
		}
		return e.Str("action", action)
	}
}

// InvocationID adds an invocation ID field.
func InvocationID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("invocation_id", id)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Success adds the outcome of an invocation.
func Success(ok bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("success", ok)
	}
}

// ErrorKind adds the failure category of an invocation.
func ErrorKind(kind tool.ErrorKind) Field {
	return func(e *bolt.Event) *bolt.Event {
		if kind == "" {
			return e
		}
		return e.Str("error_kind", string(kind))
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Endpoint adds a remote endpoint field. Callers pass URLs without
// credentials.
func Endpoint(url string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("endpoint", url)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
