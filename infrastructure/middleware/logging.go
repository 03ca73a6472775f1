// Package middleware provides tool execution middleware for logging,
// tracing and metrics.
package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/agent-toolkit/domain/middleware"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/logging"
)

// LoggingConfig configures the logging middleware.
type LoggingConfig struct {
	// Logger receives the events. Nil uses the default logger.
	Logger *bolt.Logger
}

// Logging returns middleware that logs each tool invocation.
func Logging(cfg LoggingConfig) middleware.Middleware {
	logger := func() *bolt.Logger {
		if cfg.Logger != nil {
			return cfg.Logger
		}
		return logging.Get()
	}

	return func(next middleware.Handler) middleware.Handler {
		return func(ctx context.Context, execCtx *middleware.ExecutionContext) (tool.Result, error) {
			start := time.Now()
			action := execCtx.Action()

			logging.NewEvent(logger().Debug()).
				Add(logging.InvocationID(execCtx.InvocationID)).
				Add(logging.ToolName(execCtx.Tool.Name())).
				Add(logging.Action(action)).
				Msg("executing tool")

			result, err := next(ctx, execCtx)
			duration := time.Since(start)

			if err != nil {
				logging.NewEvent(logger().Error()).
					Add(logging.InvocationID(execCtx.InvocationID)).
					Add(logging.ToolName(execCtx.Tool.Name())).
					Add(logging.Action(action)).
					Add(logging.ErrorField(err)).
					Add(logging.Duration(duration)).
					Msg("tool execution failed")
				return result, err
			}

			var ev *bolt.Event
			if result.IsError() {
				ev = logger().Warn()
			} else {
				ev = logger().Info()
			}
			logging.NewEvent(ev).
				Add(logging.InvocationID(execCtx.InvocationID)).
				Add(logging.ToolName(execCtx.Tool.Name())).
				Add(logging.Action(action)).
				Add(logging.Success(!result.IsError())).
				Add(logging.ErrorKind(tool.KindOf(result.Error))).
				Add(logging.Duration(duration)).
				Msg("tool executed")

			return result, nil
		}
	}
}
