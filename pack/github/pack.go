// Package github provides the github-operations tool: issue and repository
// content access through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/felixgeelhaar/agent-toolkit/domain/config"
	"github.com/felixgeelhaar/agent-toolkit/domain/pack"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// ToolName is the stable identifier of the GitHub tool.
const ToolName = "github-operations"

// Config configures the GitHub tool.
type Config struct {
	// Token is sent as "Authorization: token <Token>" when non-empty.
	Token string

	// BaseURL is the API root. Defaults to https://api.github.com/.
	BaseURL string

	// UserAgent is sent on every request.
	UserAgent string

	// Timeout bounds each request when HTTPClient is nil.
	Timeout time.Duration

	// HTTPClient is the underlying client. Tests inject one here.
	HTTPClient *http.Client
}

// ConfigFrom maps the resolved toolkit configuration onto Config.
func ConfigFrom(c config.GitHubConfig) Config {
	return Config{
		Token:     c.Token,
		BaseURL:   c.BaseURL,
		UserAgent: c.UserAgent,
		Timeout:   c.Timeout.Duration(),
	}
}

// New creates the GitHub pack.
func New(cfg Config) (*pack.Pack, error) {
	t, err := NewTool(cfg)
	if err != nil {
		return nil, err
	}

	return pack.NewBuilder("github").
		WithDescription("GitHub issue and repository content operations").
		WithVersion("1.0.0").
		WithMetadata("provider", "go-github").
		AddTool(t).
		Build(), nil
}

// NewTool creates the github-operations tool.
func NewTool(cfg Config) (tool.Tool, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = config.DefaultGitHubUserAgent
	}

	ops := &operations{cfg: cfg, baseURL: base}

	return tool.NewBuilder(ToolName).
		WithDescription("Interact with GitHub repositories: get an issue, create an issue, read a file, or list a directory").
		WithInputSchema(inputSchema).
		WithOutputSchema(outputSchema).
		WithRiskLevel(tool.RiskLow).
		OpenWorld().
		WithTags("github", "issues", "contents").
		WithHandler(ops.handle).
		Build()
}

// operations holds the immutable configuration shared by every invocation.
type operations struct {
	cfg     Config
	baseURL *url.URL
}

func (o *operations) handle(ctx context.Context, input json.RawMessage) (tool.Result, error) {
	start := time.Now()

	op, err := parse(input)
	if err != nil {
		return o.respond(start, tool.Fail(err)), nil
	}

	data, message, err := op.run(ctx, o.client(ctx))
	if err != nil {
		return o.respond(start, tool.Fail(err)), nil
	}
	return o.respond(start, tool.Succeed(data, message)), nil
}

func (o *operations) respond(start time.Time, outcome tool.Outcome) tool.Result {
	result := tool.Respond(ToolName, outputSchema, outcome)
	result.Duration = time.Since(start)
	return result
}
