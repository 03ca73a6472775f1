// Package mcp exposes toolkit tools over the Model Context Protocol using
// github.com/felixgeelhaar/mcp-go.
package mcp

import (
	"context"
	"encoding/json"
	"errors"

	mcpgo "github.com/felixgeelhaar/mcp-go"
	mcpserver "github.com/felixgeelhaar/mcp-go/server"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
	"github.com/felixgeelhaar/agent-toolkit/infrastructure/logging"
)

// ErrNoTools indicates a server was configured with an empty registry.
var ErrNoTools = errors.New("no tools to serve")

// ToolServer wraps an MCP server to expose toolkit tools.
type ToolServer struct {
	srv   *mcpgo.Server
	names []string
}

// ServerConfig configures a tool server.
type ServerConfig struct {
	// Name is the server name.
	Name string

	// Version is the server version.
	Version string

	// Description is an optional server description.
	Description string

	// Instructions provides usage instructions for clients.
	Instructions string

	// Registry holds the tools to expose.
	Registry tool.Registry
}

// NewToolServer creates an MCP server exposing every tool in the registry.
func NewToolServer(cfg ServerConfig) (*ToolServer, error) {
	if cfg.Registry == nil || len(cfg.Registry.Names()) == 0 {
		return nil, ErrNoTools
	}

	info := mcpgo.ServerInfo{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Description: cfg.Description,
		Capabilities: mcpgo.Capabilities{
			Tools: true,
		},
	}

	var opts []mcpgo.Option
	if cfg.Instructions != "" {
		opts = append(opts, mcpgo.WithInstructions(cfg.Instructions))
	}

	s := &ToolServer{srv: mcpgo.NewServer(info, opts...)}
	for _, t := range cfg.Registry.List() {
		s.srv.Tool(t.Name()).
			Description(t.Description()).
			Handler(ToolHandler(t))
		s.names = append(s.names, t.Name())
	}
	s.srv.Use(mcpgo.Recover(), mcpgo.RequestID())

	return s, nil
}

// ToolHandler adapts a tool to an MCP handler. The handler returns the
// serialized outcome, so failed invocations still reach the client as
// {"success": false, ...} rather than protocol errors.
func ToolHandler(t tool.Tool) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		if len(input) == 0 {
			input = json.RawMessage(`{}`)
		}
		result, err := t.Execute(ctx, input)
		if err != nil {
			return "", err
		}
		return string(result.Output), nil
	}
}

// ToolNames returns the names of the exposed tools.
func (s *ToolServer) ToolNames() []string {
	return append([]string(nil), s.names...)
}

// Server returns the underlying mcp-go server.
func (s *ToolServer) Server() *mcpgo.Server {
	return s.srv
}

// Use adds middleware to the server.
func (s *ToolServer) Use(middlewares ...mcpserver.Middleware) {
	s.srv.Use(middlewares...)
}

// ServeStdio runs the server over stdin/stdout.
func (s *ToolServer) ServeStdio(ctx context.Context, opts ...mcpgo.ServeOption) error {
	logging.Info().
		Add(logging.Component("mcp")).
		Add(logging.Str("transport", "stdio")).
		Msg("serving tools")
	return mcpgo.ServeStdio(ctx, s.srv, opts...)
}

// ServeHTTP runs the server over HTTP.
func (s *ToolServer) ServeHTTP(ctx context.Context, addr string, opts ...mcpgo.HTTPOption) error {
	logging.Info().
		Add(logging.Component("mcp")).
		Add(logging.Str("transport", "http")).
		Add(logging.Str("addr", addr)).
		Msg("serving tools")
	return mcpgo.ServeHTTP(ctx, s.srv, addr, opts...)
}
