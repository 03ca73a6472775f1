// Package search provides the web-search tool.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/felixgeelhaar/agent-toolkit/domain/config"
	"github.com/felixgeelhaar/agent-toolkit/domain/pack"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// ToolName is the stable identifier of the search tool.
const ToolName = "web-search"

// Config configures the search pack.
type Config struct {
	// Provider produces results. Defaults to TemplateProvider.
	Provider Provider

	// DefaultBaseURL is used when a request has no base_url.
	DefaultBaseURL string
}

// ConfigFrom maps the resolved toolkit configuration onto Config.
func ConfigFrom(c config.SearchConfig) Config {
	return Config{DefaultBaseURL: c.BaseURL}
}

// New creates the search pack.
func New(cfg Config) *pack.Pack {
	return pack.NewBuilder("search").
		WithDescription("Web search for candidate information").
		WithVersion("1.0.0").
		AddTool(NewTool(cfg)).
		Build()
}

// NewTool creates the web-search tool.
func NewTool(cfg Config) tool.Tool {
	if cfg.Provider == nil {
		cfg.Provider = NewTemplateProvider()
	}
	s := &searcher{cfg: cfg}

	return tool.NewBuilder(ToolName).
		WithDescription("Search the web for candidate information across professional platforms").
		WithInputSchema(inputSchema).
		WithOutputSchema(outputSchema).
		ReadOnly().
		Idempotent().
		WithTags("search", "web").
		WithHandler(s.handle).
		MustBuild()
}

var inputSchema = tool.MustSchemaFor(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"query":    {Type: "string", Description: "Search query or keywords"},
		"base_url": {Type: "string", Description: "Optional custom base URL for search (defaults to Google)"},
	},
	Required: []string{"query"},
})

var outputSchema = tool.MustSchemaFor(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"success": {Type: "boolean"},
		"data": {
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"results": {
					Type: "array",
					Items: &jsonschema.Schema{
						Type:     "object",
						Required: []string{"title", "url", "snippet", "platform", "relevance"},
					},
				},
				"total_matches": {Type: "integer"},
				"query":         {Type: "string"},
			},
			Required: []string{"results", "total_matches", "query"},
		},
		"message":    {Type: "string"},
		"error_kind": {Type: "string"},
	},
	Required: []string{"success"},
})

// Results is the web-search payload.
type Results struct {
	Results      []Result `json:"results"`
	TotalMatches int      `json:"total_matches"`
	Query        string   `json:"query"`
}

type searchInput struct {
	Query   string `json:"query"`
	BaseURL string `json:"base_url,omitempty"`
}

type searcher struct {
	cfg Config
}

func (s *searcher) handle(ctx context.Context, input json.RawMessage) (tool.Result, error) {
	start := time.Now()
	result := tool.Respond(ToolName, outputSchema, s.search(ctx, input))
	result.Duration = time.Since(start)
	return result, nil
}

func (s *searcher) search(ctx context.Context, input json.RawMessage) tool.Outcome {
	var in searchInput
	if err := tool.DecodeInput(ToolName, inputSchema, input, &in); err != nil {
		return tool.Fail(err)
	}
	if in.BaseURL != "" && !isWebURL(in.BaseURL) {
		return tool.Fail(tool.ValidationFailed(ToolName, "base_url: Invalid url"))
	}

	q := Query{Text: in.Query, BaseURL: in.BaseURL}
	if q.BaseURL == "" {
		q.BaseURL = s.cfg.DefaultBaseURL
	}

	results, err := s.cfg.Provider.Search(ctx, q)
	if err != nil {
		return tool.Fail(tool.NewTransportError("Web search error: "+err.Error(), err))
	}
	if results == nil {
		results = []Result{}
	}

	return tool.Succeed(Results{
		Results:      results,
		TotalMatches: len(results),
		Query:        in.Query,
	}, fmt.Sprintf(`Found %d web search results for "%s"`, len(results), in.Query))
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
