package tool

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema wraps a JSON Schema document used for input/output validation.
type Schema struct {
	raw      json.RawMessage
	resolved *jsonschema.Resolved
}

// NewSchema creates a schema from raw JSON. A document that does not
// compile is kept for display but validates only JSON well-formedness.
func NewSchema(raw json.RawMessage) Schema {
	s := Schema{raw: raw}
	var doc jsonschema.Schema
	if err := json.Unmarshal(raw, &doc); err == nil {
		if resolved, err := doc.Resolve(nil); err == nil {
			s.resolved = resolved
		}
	}
	return s
}

// SchemaFor compiles a typed schema document.
func SchemaFor(doc *jsonschema.Schema) (Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return Schema{}, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	resolved, err := doc.Resolve(nil)
	if err != nil {
		return Schema{}, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return Schema{raw: raw, resolved: resolved}, nil
}

// MustSchemaFor is like SchemaFor but panics if the document does not compile.
func MustSchemaFor(doc *jsonschema.Schema) Schema {
	s, err := SchemaFor(doc)
	if err != nil {
		panic(err)
	}
	return s
}

// EmptySchema returns a schema that accepts any input.
func EmptySchema() Schema {
	return Schema{raw: json.RawMessage(`{}`)}
}

// Raw returns the underlying JSON schema.
func (s Schema) Raw() json.RawMessage {
	return s.raw
}

// IsEmpty returns true if the schema is empty or nil.
func (s Schema) IsEmpty() bool {
	return len(s.raw) == 0 || string(s.raw) == "{}" || string(s.raw) == "null"
}

// Validate validates data against the schema.
func (s Schema) Validate(data json.RawMessage) error {
	if !json.Valid(data) {
		return fmt.Errorf("invalid JSON")
	}
	if s.resolved == nil {
		return nil
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return err
	}
	return s.resolved.Validate(instance)
}

// MarshalJSON implements json.Marshaler.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s.raw == nil {
		return []byte("{}"), nil
	}
	return s.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Schema) UnmarshalJSON(data []byte) error {
	*s = NewSchema(append(json.RawMessage(nil), data...))
	return nil
}
