package config

import (
	"fmt"

	"github.com/felixgeelhaar/agent-toolkit/domain/config"
)

// Environment variables read by Resolve.
const (
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubAPIURL   = "GITHUB_API_URL"
	EnvOpenAIProxyURL = "OPENAI_PROXY_URL"
	EnvOpenAIAPIKey   = "OPENAI_API_KEY"
	EnvLogLevel       = "TOOLKIT_LOG_LEVEL"
	EnvLogFormat      = "TOOLKIT_LOG_FORMAT"
)

// ApplyEnv overlays non-empty environment variables onto cfg.
func ApplyEnv(cfg *config.ToolkitConfig, lookup LookupFunc) {
	if lookup == nil {
		lookup = OSLookup
	}
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(&cfg.GitHub.Token, EnvGitHubToken)
	set(&cfg.GitHub.BaseURL, EnvGitHubAPIURL)
	set(&cfg.LLM.ProxyURL, EnvOpenAIProxyURL)
	set(&cfg.LLM.APIKey, EnvOpenAIAPIKey)
	set(&cfg.Logging.Level, EnvLogLevel)
	set(&cfg.Logging.Format, EnvLogFormat)
}

// FromEnv builds a configuration from defaults and the environment.
func FromEnv(lookup LookupFunc) (*config.ToolkitConfig, error) {
	return Resolve("", lookup)
}

// Resolve loads path (if non-empty), overlays the environment, applies
// defaults and validates the result.
func Resolve(path string, lookup LookupFunc) (*config.ToolkitConfig, error) {
	cfg := &config.ToolkitConfig{}
	if path != "" {
		loader := NewLoaderWithOptions(WithLookup(lookup), WithValidation(false))
		loaded, err := loader.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	ApplyEnv(cfg, lookup)
	cfg.ApplyDefaults()

	if errs := config.NewValidator().Validate(cfg); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %v", config.ErrValidationFailed, errs)
	}
	return cfg, nil
}
