package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the dotted path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates toolkit configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *ToolkitConfig) ValidationErrors {
	v.errors = nil

	v.validateGitHub(config)
	v.validatePDF(config)
	v.validateSearch(config)
	v.validateLogging(config)
	v.validateTelemetry(config)
	v.validateServer(config)
	v.validateAgents(config)

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateURL(path, raw string) {
	if raw == "" {
		return
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		v.addError(path, fmt.Sprintf("invalid URL: %s", raw))
	}
}

func (v *Validator) validateGitHub(config *ToolkitConfig) {
	v.validateURL("github.base_url", config.GitHub.BaseURL)
	if config.GitHub.Timeout < 0 {
		v.addError("github.timeout", "timeout must be non-negative")
	}
}

func (v *Validator) validatePDF(config *ToolkitConfig) {
	if config.PDF.MaxBytes < 0 {
		v.addError("pdf.max_bytes", "max_bytes must be non-negative")
	}
	if config.PDF.Timeout < 0 {
		v.addError("pdf.timeout", "timeout must be non-negative")
	}
}

func (v *Validator) validateSearch(config *ToolkitConfig) {
	v.validateURL("search.base_url", config.Search.BaseURL)
}

func (v *Validator) validateLogging(config *ToolkitConfig) {
	if config.Logging.Level != "" {
		validLevels := map[string]bool{
			"trace": true, "debug": true, "info": true, "warn": true, "error": true,
		}
		if !validLevels[strings.ToLower(config.Logging.Level)] {
			v.addError("logging.level", fmt.Sprintf("invalid level: %s", config.Logging.Level))
		}
	}
	if config.Logging.Format != "" && config.Logging.Format != "json" && config.Logging.Format != "console" {
		v.addError("logging.format", fmt.Sprintf("invalid format: %s", config.Logging.Format))
	}
}

func (v *Validator) validateTelemetry(config *ToolkitConfig) {
	tracing := config.Telemetry.Tracing
	if !tracing.Enabled {
		return
	}
	switch tracing.Exporter {
	case "", "stdout", "none":
	case "otlp":
		if tracing.Endpoint == "" {
			v.addError("telemetry.tracing.endpoint", "endpoint is required for otlp exporter")
		}
	default:
		v.addError("telemetry.tracing.exporter", fmt.Sprintf("unknown exporter: %s", tracing.Exporter))
	}
	if tracing.SampleRate < 0 || tracing.SampleRate > 1 {
		v.addError("telemetry.tracing.sample_rate", "sample_rate must be between 0 and 1")
	}
}

func (v *Validator) validateServer(config *ToolkitConfig) {
	switch config.Server.Transport {
	case "", "stdio":
	case "http":
		if config.Server.Addr == "" {
			v.addError("server.addr", "addr is required for http transport")
		}
	default:
		v.addError("server.transport", fmt.Sprintf("unknown transport: %s", config.Server.Transport))
	}
}

func (v *Validator) validateAgents(config *ToolkitConfig) {
	names := make([]string, 0, len(config.Agents))
	for name := range config.Agents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		profile := config.Agents[name]
		path := "agents." + name
		if profile.Name != "" && profile.Name != name {
			v.addError(path+".name", fmt.Sprintf("name %q does not match key", profile.Name))
		}
		if len(profile.Tools) == 0 {
			v.addError(path+".tools", "at least one tool is required")
		}
	}
}
