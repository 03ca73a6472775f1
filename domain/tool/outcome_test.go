package tool_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

func TestFail_UsesErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want tool.ErrorKind
	}{
		{"validation", tool.NewValidationError("Title and body are required"), tool.KindValidation},
		{"api", tool.NewAPIError("Failed to fetch issue: 404 Not Found"), tool.KindAPI},
		{"transport", tool.NewTransportError("GitHub API error: boom", errors.New("boom")), tool.KindTransport},
		{"unclassified", errors.New("boom"), tool.KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := tool.Fail(tt.err)
			if o.Success {
				t.Error("Success = true, want false")
			}
			if o.ErrorKind != tt.want {
				t.Errorf("ErrorKind = %q, want %q", o.ErrorKind, tt.want)
			}
			if o.Message != tt.err.Error() {
				t.Errorf("Message = %q, want %q", o.Message, tt.err.Error())
			}
		})
	}
}

func TestRespond_FailureOmitsData(t *testing.T) {
	t.Parallel()

	result := tool.Respond("demo", tool.EmptySchema(), tool.Fail(tool.NewAPIError("Failed to fetch file: 404 Not Found")))

	var raw map[string]any
	if err := json.Unmarshal(result.Output, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := raw["data"]; ok {
		t.Errorf("failure output contains data: %s", result.Output)
	}
	if raw["success"] != false {
		t.Errorf("success = %v, want false", raw["success"])
	}
	if raw["error_kind"] != "api" {
		t.Errorf("error_kind = %v, want api", raw["error_kind"])
	}
	if tool.KindOf(result.Error) != tool.KindAPI {
		t.Errorf("Result.Error kind = %q, want api", tool.KindOf(result.Error))
	}
}

func TestRespond_OutputSchemaViolation(t *testing.T) {
	t.Parallel()

	schema := tool.MustSchemaFor(&jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"success": {Type: "boolean"},
			"data": {
				Type:     "object",
				Required: []string{"count"},
			},
		},
	})

	result := tool.Respond("demo", schema, tool.Succeed(map[string]any{"other": 1}, "ok"))

	o, err := result.Outcome()
	if err != nil {
		t.Fatalf("Outcome() error = %v", err)
	}
	if o.Success {
		t.Fatal("Success = true, want false")
	}
	if !strings.HasPrefix(o.Message, "Tool validation failed for demo: output:") {
		t.Errorf("Message = %q", o.Message)
	}
	if o.ErrorKind != tool.KindValidation {
		t.Errorf("ErrorKind = %q, want validation", o.ErrorKind)
	}
}

func TestResult_DecodeData(t *testing.T) {
	t.Parallel()

	result := tool.Respond("demo", tool.EmptySchema(), tool.Succeed(map[string]int{"count": 3}, "done"))
	if result.IsError() {
		t.Fatalf("IsError() = true, output %s", result.Output)
	}

	var data struct {
		Count int `json:"count"`
	}
	if err := result.DecodeData(&data); err != nil {
		t.Fatalf("DecodeData() error = %v", err)
	}
	if data.Count != 3 {
		t.Errorf("Count = %d, want 3", data.Count)
	}

	failed := tool.Respond("demo", tool.EmptySchema(), tool.Fail(tool.NewValidationError("bad")))
	if err := failed.DecodeData(&data); err == nil {
		t.Error("DecodeData() on a failure should return an error")
	}
}
