// Package observability provides OpenTelemetry integration for tracing and metrics.
package observability

import (
	"io"
	"os"
	"time"

	"github.com/felixgeelhaar/agent-toolkit/domain/config"
)

// ExporterType specifies the telemetry exporter.
type ExporterType string

const (
	// ExporterOTLP exports to an OTLP gRPC collector.
	ExporterOTLP ExporterType = "otlp"

	// ExporterStdout writes telemetry as JSON to Config.Writer.
	ExporterStdout ExporterType = "stdout"

	// ExporterNone disables export.
	ExporterNone ExporterType = "none"
)

// Config configures the observability infrastructure.
type Config struct {
	// ServiceName is the name of the service for telemetry.
	ServiceName string

	// ServiceVersion is the version of the service.
	ServiceVersion string

	// Tracing enables span export.
	Tracing bool

	// Metrics enables metric export.
	Metrics bool

	// Exporter selects where spans and metrics go.
	Exporter ExporterType

	// Endpoint is the OTLP endpoint (e.g., "localhost:4317").
	Endpoint string

	// Insecure disables TLS for the exporter connection.
	Insecure bool

	// SampleRate is the sampling rate (0.0-1.0).
	SampleRate float64

	// Writer receives stdout exports. Stdout itself carries the MCP stdio
	// transport, so the default is stderr.
	Writer io.Writer

	// BatchTimeout is the span batch export timeout.
	BatchTimeout time.Duration

	// ExportInterval is the metrics export interval.
	ExportInterval time.Duration
}

// DefaultConfig returns a default configuration with export disabled.
func DefaultConfig() Config {
	return Config{
		ServiceName:    config.DefaultServerName,
		ServiceVersion: "dev",
		Exporter:       ExporterNone,
		SampleRate:     1.0,
		Writer:         os.Stderr,
		BatchTimeout:   5 * time.Second,
		ExportInterval: 60 * time.Second,
	}
}

// ConfigFrom maps the telemetry section of the toolkit configuration.
func ConfigFrom(c config.TelemetryConfig, serviceName, version string) Config {
	cfg := DefaultConfig()
	if serviceName != "" {
		cfg.ServiceName = serviceName
	}
	if version != "" {
		cfg.ServiceVersion = version
	}
	cfg.Tracing = c.Tracing.Enabled
	cfg.Metrics = c.Metrics.Enabled
	if c.Tracing.Exporter != "" {
		cfg.Exporter = ExporterType(c.Tracing.Exporter)
	}
	cfg.Endpoint = c.Tracing.Endpoint
	cfg.Insecure = c.Tracing.Insecure
	if c.Tracing.SampleRate > 0 {
		cfg.SampleRate = c.Tracing.SampleRate
	}
	return cfg
}
