// Package config provides domain models for toolkit configuration.
package config

import (
	"time"

	"github.com/felixgeelhaar/agent-toolkit/domain/agent"
)

// Defaults applied by Default and by the loaders.
const (
	DefaultGitHubBaseURL   = "https://api.github.com/"
	DefaultGitHubUserAgent = "agent-toolkit-github"
	DefaultPDFUserAgent    = "agent-toolkit-pdf"
	DefaultPDFMaxBytes     = 20 << 20
	DefaultOpenAIBaseURL   = "https://api.openai.com/v1"
	DefaultServerName      = "agent-toolkit"
	DefaultHTTPTimeout     = 30 * time.Second
)

// ToolkitConfig is the configuration resolved once at process start.
type ToolkitConfig struct {
	// GitHub configures the github-operations tool.
	GitHub GitHubConfig `json:"github" yaml:"github"`
	// PDF configures the pdf-operations tool.
	PDF PDFConfig `json:"pdf" yaml:"pdf"`
	// Search configures the web-search tool.
	Search SearchConfig `json:"search" yaml:"search"`
	// LLM describes the model endpoint agents talk to.
	LLM LLMConfig `json:"llm" yaml:"llm"`
	// Logging configures the structured logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	// Telemetry configures tracing and metrics.
	Telemetry TelemetryConfig `json:"telemetry,omitempty" yaml:"telemetry,omitempty"`
	// Server configures the MCP server.
	Server ServerConfig `json:"server" yaml:"server"`
	// Agents maps profile names to agent profiles.
	Agents map[string]agent.Profile `json:"agents,omitempty" yaml:"agents,omitempty"`
}

// GitHubConfig configures access to the GitHub REST API.
type GitHubConfig struct {
	// Token is the optional credential sent as "Authorization: token <Token>".
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
	// BaseURL is the API root, e.g. https://api.github.com/.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// UserAgent is sent on every request.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	// Timeout bounds each request.
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// PDFConfig configures PDF retrieval.
type PDFConfig struct {
	// MaxBytes caps the size of a downloaded document.
	MaxBytes int64 `json:"max_bytes,omitempty" yaml:"max_bytes,omitempty"`
	// Timeout bounds each download.
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	// UserAgent is sent on every download.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// SearchConfig configures the web-search tool.
type SearchConfig struct {
	// BaseURL is used when a request carries no base_url.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// LLMConfig describes the model endpoint. A proxy is used only when both
// ProxyURL and APIKey are set.
type LLMConfig struct {
	// ProxyURL is an OpenAI-compatible proxy endpoint.
	ProxyURL string `json:"proxy_url,omitempty" yaml:"proxy_url,omitempty"`
	// APIKey authenticates against the proxy.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	// BaseURL is the direct endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// Endpoint returns the model endpoint and whether it is a proxy.
func (c LLMConfig) Endpoint() (string, bool) {
	if c.ProxyURL != "" && c.APIKey != "" {
		return c.ProxyURL, true
	}
	if c.BaseURL != "" {
		return c.BaseURL, false
	}
	return DefaultOpenAIBaseURL, false
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is json or console.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// TelemetryConfig configures OpenTelemetry.
type TelemetryConfig struct {
	// Tracing configures span export.
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
	// Metrics configures invocation metrics.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// TracingConfig configures span export.
type TracingConfig struct {
	// Enabled turns tracing on.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// Exporter is stdout, otlp or none.
	Exporter string `json:"exporter,omitempty" yaml:"exporter,omitempty"`
	// Endpoint is the OTLP gRPC collector address.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	// Insecure disables TLS to the collector.
	Insecure bool `json:"insecure,omitempty" yaml:"insecure,omitempty"`
	// SampleRate is the fraction of invocations traced.
	SampleRate float64 `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
}

// MetricsConfig configures invocation metrics.
type MetricsConfig struct {
	// Enabled turns metrics on.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	// Name is advertised to MCP clients.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Transport is stdio or http.
	Transport string `json:"transport,omitempty" yaml:"transport,omitempty"`
	// Addr is the listen address for the http transport.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() ToolkitConfig {
	cfg := ToolkitConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their defaults.
func (c *ToolkitConfig) ApplyDefaults() {
	if c.GitHub.BaseURL == "" {
		c.GitHub.BaseURL = DefaultGitHubBaseURL
	}
	if c.GitHub.UserAgent == "" {
		c.GitHub.UserAgent = DefaultGitHubUserAgent
	}
	if c.GitHub.Timeout == 0 {
		c.GitHub.Timeout = Duration(DefaultHTTPTimeout)
	}
	if c.PDF.MaxBytes == 0 {
		c.PDF.MaxBytes = DefaultPDFMaxBytes
	}
	if c.PDF.Timeout == 0 {
		c.PDF.Timeout = Duration(DefaultHTTPTimeout)
	}
	if c.PDF.UserAgent == "" {
		c.PDF.UserAgent = DefaultPDFUserAgent
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = DefaultOpenAIBaseURL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Telemetry.Tracing.Exporter == "" {
		c.Telemetry.Tracing.Exporter = "stdout"
	}
	if c.Telemetry.Tracing.SampleRate == 0 {
		c.Telemetry.Tracing.SampleRate = 1
	}
	if c.Server.Name == "" {
		c.Server.Name = DefaultServerName
	}
	if c.Server.Transport == "" {
		c.Server.Transport = "stdio"
	}
	if len(c.Agents) == 0 {
		c.Agents = agent.DefaultProfiles()
	}
	for name, profile := range c.Agents {
		if profile.Name == "" {
			profile.Name = name
		}
		if profile.Model == "" {
			profile.Model = agent.DefaultModel
		}
		c.Agents[name] = profile
	}
}

// Duration is a time.Duration that supports JSON/YAML string representation.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
