package middleware

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/agent-toolkit/domain/middleware"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// Wrap returns a tool whose Execute runs through mws. Each call gets a
// fresh invocation ID.
func Wrap(t tool.Tool, mws ...middleware.Middleware) tool.Tool {
	if len(mws) == 0 {
		return t
	}
	return &wrappedTool{
		Tool:    t,
		handler: middleware.Chain(mws...)(middleware.Execute),
	}
}

// WrapRegistry is Wrap using the chain held by reg.
func WrapRegistry(t tool.Tool, reg *middleware.Registry) tool.Tool {
	if reg == nil || reg.Len() == 0 {
		return t
	}
	return &wrappedTool{
		Tool:    t,
		handler: reg.Chain()(middleware.Execute),
	}
}

type wrappedTool struct {
	tool.Tool
	handler middleware.Handler
}

func (w *wrappedTool) Execute(ctx context.Context, input json.RawMessage) (tool.Result, error) {
	return w.handler(ctx, &middleware.ExecutionContext{
		InvocationID: uuid.NewString(),
		Tool:         w.Tool,
		Input:        input,
	})
}

// Unwrap returns the undecorated tool.
func (w *wrappedTool) Unwrap() tool.Tool {
	return w.Tool
}
