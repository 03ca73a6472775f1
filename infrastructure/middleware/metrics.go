package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/felixgeelhaar/agent-toolkit/domain/middleware"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/logging"
)

// Metric names recorded by the metrics middleware.
const (
	MetricInvocations = "toolkit.tool.invocations"
	MetricDuration    = "toolkit.tool.duration"
)

// MetricsConfig configures the metrics middleware.
type MetricsConfig struct {
	// Meter creates the instruments. Nil uses the global provider.
	Meter metric.Meter
}

// Metrics returns middleware that records an invocation counter and a
// latency histogram per tool and action. Instruments that cannot be
// created leave the middleware as a pass-through.
func Metrics(cfg MetricsConfig) middleware.Middleware {
	meter := cfg.Meter
	if meter == nil {
		meter = otel.Meter(defaultInstrumentationName)
	}

	invocations, err := meter.Int64Counter(MetricInvocations,
		metric.WithDescription("Number of tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		logging.Warn().Add(logging.ErrorField(err)).Msg("tool invocation counter unavailable")
		return middleware.Noop()
	}
	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Tool invocation latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		logging.Warn().Add(logging.ErrorField(err)).Msg("tool duration histogram unavailable")
		return middleware.Noop()
	}

	return func(next middleware.Handler) middleware.Handler {
		return func(ctx context.Context, execCtx *middleware.ExecutionContext) (tool.Result, error) {
			start := time.Now()
			result, err := next(ctx, execCtx)
			elapsed := time.Since(start)

			attrs := []attribute.KeyValue{
				attribute.String("tool", execCtx.Tool.Name()),
				attribute.String("action", execCtx.Action()),
			}
			duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))

			status := "success"
			if err != nil || result.IsError() {
				status = "error"
			}
			attrs = append(attrs, attribute.String("status", status))
			if kind := tool.KindOf(result.Error); kind != "" {
				attrs = append(attrs, attribute.String("error_kind", string(kind)))
			}
			invocations.Add(ctx, 1, metric.WithAttributes(attrs...))

			return result, err
		}
	}
}
