package github

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

func ptr[T any](v T) *T { return &v }

var inputSchema = tool.MustSchemaFor(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"action": {
			Type:        "string",
			Description: "Operation to perform",
			Enum:        []any{"get_issue", "create_issue", "get_file_content", "list_directory_contents"},
		},
		"owner": {
			Type:        "string",
			Description: "Repository owner (user or organization)",
			MinLength:   ptr(1),
		},
		"repo": {
			Type:        "string",
			Description: "Repository name",
			MinLength:   ptr(1),
		},
		"issue_number": {
			Type:        "integer",
			Description: "Issue number, required for get_issue",
			Minimum:     ptr(1.0),
		},
		"title": {
			Type:        "string",
			Description: "Issue title, required for create_issue",
		},
		"body": {
			Type:        "string",
			Description: "Issue body, required for create_issue",
		},
		"file_path": {
			Type:        "string",
			Description: "Path inside the repository; required for get_file_content, defaults to the root for list_directory_contents",
		},
	},
	Required: []string{"action", "owner", "repo"},
})

var outputSchema = tool.MustSchemaFor(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"success":    {Type: "boolean"},
		"data":       {Type: "object"},
		"message":    {Type: "string"},
		"error_kind": {Type: "string", Enum: []any{"validation", "api", "transport"}},
	},
	Required: []string{"success"},
})
