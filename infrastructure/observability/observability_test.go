package observability_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/agent-toolkit/domain/config"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/observability"
)

func TestConfigFrom(t *testing.T) {
	t.Parallel()

	cfg := observability.ConfigFrom(config.TelemetryConfig{
		Tracing: config.TracingConfig{
			Enabled:    true,
			Exporter:   "otlp",
			Endpoint:   "collector:4317",
			Insecure:   true,
			SampleRate: 0.5,
		},
		Metrics: config.MetricsConfig{Enabled: true},
	}, "svc", "1.2.3")

	if cfg.ServiceName != "svc" || cfg.ServiceVersion != "1.2.3" {
		t.Errorf("service = %s/%s", cfg.ServiceName, cfg.ServiceVersion)
	}
	if !cfg.Tracing || !cfg.Metrics {
		t.Error("tracing and metrics should be enabled")
	}
	if cfg.Exporter != observability.ExporterOTLP || cfg.Endpoint != "collector:4317" || !cfg.Insecure {
		t.Errorf("exporter = %s %s insecure=%v", cfg.Exporter, cfg.Endpoint, cfg.Insecure)
	}
	if cfg.SampleRate != 0.5 {
		t.Errorf("SampleRate = %v, want 0.5", cfg.SampleRate)
	}
}

func TestNew_None(t *testing.T) {
	t.Parallel()

	p, err := observability.New(context.Background(), observability.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.TracingEnabled() || p.MetricsEnabled() {
		t.Error("default config should not export")
	}

	_, span := p.Tracer("test").Start(context.Background(), "noop")
	span.End()
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNew_UnknownExporter(t *testing.T) {
	t.Parallel()

	cfg := observability.DefaultConfig()
	cfg.Tracing = true
	cfg.Exporter = "zipkin"

	_, err := observability.New(context.Background(), cfg)
	if !errors.Is(err, observability.ErrUnknownExporter) {
		t.Errorf("New() error = %v, want ErrUnknownExporter", err)
	}
}

// Stdout export installs global providers, so this test is not parallel.
func TestNew_Stdout(t *testing.T) {
	var buf bytes.Buffer
	cfg := observability.DefaultConfig()
	cfg.Tracing = true
	cfg.Metrics = true
	cfg.Exporter = observability.ExporterStdout
	cfg.Writer = &buf

	ctx := context.Background()
	p, err := observability.New(ctx, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !p.TracingEnabled() || !p.MetricsEnabled() {
		t.Fatal("stdout config should export spans and metrics")
	}

	_, span := p.Tracer("test").Start(ctx, "tool.web-search")
	span.End()

	counter, err := p.Meter("test").Int64Counter("toolkit.test.calls")
	if err != nil {
		t.Fatalf("Int64Counter() error = %v", err)
	}
	counter.Add(ctx, 1)

	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "tool.web-search") {
		t.Error("stdout export should contain the span")
	}
	if !strings.Contains(out, "toolkit.test.calls") {
		t.Error("stdout export should contain the metric")
	}
}
