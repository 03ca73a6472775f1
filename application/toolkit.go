// Package application assembles the toolkit from its configuration.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/agent-toolkit/domain/agent"
	"github.com/felixgeelhaar/agent-toolkit/domain/config"
	"github.com/felixgeelhaar/agent-toolkit/domain/middleware"
	"github.com/felixgeelhaar/agent-toolkit/domain/pack"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/logging"
	inframw "github.com/felixgeelhaar/agent-toolkit/infrastructure/middleware"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/observability"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/storage/memory"
	"github.com/felixgeelhaar/agent-toolkit/pack/github"
	"github.com/felixgeelhaar/agent-toolkit/pack/pdf"
	"github.com/felixgeelhaar/agent-toolkit/pack/search"
)

const instrumentationName = "github.com/felixgeelhaar/agent-toolkit"

// Toolkit holds the configured packs and the registry of decorated tools.
type Toolkit struct {
	config    config.ToolkitConfig
	registry  *memory.ToolRegistry
	packs     []*pack.Pack
	telemetry *observability.Provider
	logger    *bolt.Logger
}

// New builds every pack from cfg, wraps each tool with the logging,
// tracing and metrics middleware and registers it. cfg is expected to be
// resolved and validated.
func New(cfg config.ToolkitConfig, opts ...Option) (*Toolkit, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.telemetry == nil {
		o.telemetry = observability.NewNoopProvider()
	}

	tk := &Toolkit{
		config:    cfg,
		registry:  memory.NewToolRegistry(),
		telemetry: o.telemetry,
		logger:    o.logger,
	}

	packs, err := buildPacks(cfg, o)
	if err != nil {
		return nil, err
	}

	chain := middleware.NewRegistry().
		Use(inframw.Logging(inframw.LoggingConfig{Logger: o.logger})).
		Use(inframw.Tracing(inframw.TracingConfig{
			Tracer:         o.telemetry.Tracer(instrumentationName),
			SpanNamePrefix: "tool.",
		})).
		Use(inframw.Metrics(inframw.MetricsConfig{
			Meter: o.telemetry.Meter(instrumentationName),
		})).
		UseMany(o.middleware...)

	for _, p := range packs {
		wrapped := decorate(p, chain)
		if err := pack.Install(wrapped, tk.registry); err != nil {
			return nil, err
		}
		tk.packs = append(tk.packs, wrapped)
	}

	for _, name := range agent.SortedNames(cfg.Agents) {
		if _, err := tk.registry.Subset(cfg.Agents[name].Tools); err != nil {
			return nil, fmt.Errorf("%w: agent %s: %w", agent.ErrInvalidProfile, name, err)
		}
	}

	return tk, nil
}

func buildPacks(cfg config.ToolkitConfig, o options) ([]*pack.Pack, error) {
	ghCfg := github.ConfigFrom(cfg.GitHub)
	ghCfg.HTTPClient = o.httpClient
	ghPack, err := github.New(ghCfg)
	if err != nil {
		return nil, fmt.Errorf("github pack: %w", err)
	}

	pdfCfg := pdf.ConfigFrom(cfg.PDF)
	pdfCfg.HTTPClient = o.httpClient
	pdfCfg.Provider = o.pdfProvider

	searchCfg := search.ConfigFrom(cfg.Search)
	searchCfg.Provider = o.searchProvider

	return []*pack.Pack{ghPack, pdf.New(pdfCfg), search.New(searchCfg)}, nil
}

// decorate returns a copy of p whose tools run through chain.
func decorate(p *pack.Pack, chain *middleware.Registry) *pack.Pack {
	wrapped := *p
	wrapped.Tools = make([]tool.Tool, len(p.Tools))
	for i, t := range p.Tools {
		wrapped.Tools[i] = inframw.WrapRegistry(t, chain)
	}
	return &wrapped
}

// Config returns the configuration the toolkit was built from.
func (tk *Toolkit) Config() config.ToolkitConfig {
	return tk.config
}

// Registry returns every registered tool.
func (tk *Toolkit) Registry() tool.Registry {
	return tk.registry
}

// Packs returns the installed packs.
func (tk *Toolkit) Packs() []*pack.Pack {
	return append([]*pack.Pack(nil), tk.packs...)
}

// Profiles returns the configured agent profiles sorted by name.
func (tk *Toolkit) Profiles() []agent.Profile {
	names := agent.SortedNames(tk.config.Agents)
	profiles := make([]agent.Profile, len(names))
	for i, name := range names {
		profiles[i] = tk.config.Agents[name]
	}
	return profiles
}

// AgentRegistry returns a registry restricted to the tools of the named
// profile. An empty name returns every tool.
func (tk *Toolkit) AgentRegistry(name string) (tool.Registry, error) {
	if name == "" {
		return tk.registry, nil
	}
	profile, err := agent.Lookup(tk.config.Agents, name)
	if err != nil {
		return nil, err
	}
	return tk.registry.Subset(profile.Tools)
}

// Invoke runs the named tool once. Tool failures are reported in the
// result; the error is non-nil only when the tool does not exist.
func (tk *Toolkit) Invoke(ctx context.Context, name string, input json.RawMessage) (tool.Result, error) {
	t, ok := tk.registry.Get(name)
	if !ok {
		return tool.Result{}, fmt.Errorf("%w: %s", tool.ErrToolNotFound, name)
	}
	return t.Execute(ctx, input)
}

// LogModelEndpoint records which model endpoint agents will use. The API
// key is never logged.
func (tk *Toolkit) LogModelEndpoint() {
	endpoint, proxy := tk.config.LLM.Endpoint()
	l := tk.logger
	if l == nil {
		l = logging.Get()
	}

	ev := logging.NewEvent(l.Info()).
		Add(logging.Component("llm")).
		Add(logging.Endpoint(redact(endpoint)))
	if proxy {
		ev.Msg("using proxy endpoint")
		return
	}
	ev.Msg("using direct OpenAI connection")
}

// Shutdown flushes telemetry.
func (tk *Toolkit) Shutdown(ctx context.Context) error {
	return tk.telemetry.Shutdown(ctx)
}

func redact(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	return u.Redacted()
}
