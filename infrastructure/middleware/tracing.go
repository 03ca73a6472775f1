package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/agent-toolkit/domain/middleware"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

const defaultInstrumentationName = "github.com/felixgeelhaar/agent-toolkit"

// TracingConfig configures the tracing middleware.
type TracingConfig struct {
	// Tracer is the tracer to use. Nil uses the global provider.
	Tracer trace.Tracer

	// SpanNamePrefix is prepended to the tool name.
	SpanNamePrefix string
}

// DefaultTracingConfig returns a sensible default configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{SpanNamePrefix: "tool."}
}

// Tracing returns middleware that creates OpenTelemetry spans for tool
// invocations.
func Tracing(cfg TracingConfig) middleware.Middleware {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(defaultInstrumentationName)
	}

	return func(next middleware.Handler) middleware.Handler {
		return func(ctx context.Context, execCtx *middleware.ExecutionContext) (tool.Result, error) {
			ctx, span := tracer.Start(ctx, cfg.SpanNamePrefix+execCtx.Tool.Name(),
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(ToolSpanAttributes(execCtx)...),
			)
			defer span.End()

			result, err := next(ctx, execCtx)

			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			case result.IsError():
				span.SetAttributes(attribute.String("tool.error_kind", string(tool.KindOf(result.Error))))
				span.SetStatus(codes.Error, result.Error.Error())
			default:
				span.SetStatus(codes.Ok, "")
			}
			span.SetAttributes(attribute.Int64("tool.duration_ms", result.Duration.Milliseconds()))

			return result, err
		}
	}
}

// ToolSpanAttributes returns standard attributes for a tool span.
func ToolSpanAttributes(execCtx *middleware.ExecutionContext) []attribute.KeyValue {
	annotations := execCtx.Tool.Annotations()
	attrs := []attribute.KeyValue{
		attribute.String("tool.invocation_id", execCtx.InvocationID),
		attribute.String("tool.name", execCtx.Tool.Name()),
		attribute.Bool("tool.read_only", annotations.ReadOnly),
		attribute.String("tool.risk_level", annotations.RiskLevel.String()),
	}
	if action := execCtx.Action(); action != "" {
		attrs = append(attrs, attribute.String("tool.action", action))
	}
	return attrs
}
