package pack_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/felixgeelhaar/agent-toolkit/domain/pack"
	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

// mockTool implements tool.Tool for testing
type mockTool struct {
	name string
}

func (m mockTool) Name() string                  { return m.name }
func (m mockTool) Description() string           { return "mock tool" }
func (m mockTool) Annotations() tool.Annotations { return tool.Annotations{} }
func (m mockTool) InputSchema() tool.Schema      { return tool.Schema{} }
func (m mockTool) OutputSchema() tool.Schema     { return tool.Schema{} }
func (m mockTool) Execute(context.Context, json.RawMessage) (tool.Result, error) {
	return tool.Result{}, nil
}

// mapRegistry is a minimal tool.Registry for install tests.
type mapRegistry map[string]tool.Tool

func (r mapRegistry) Register(t tool.Tool) error {
	if _, ok := r[t.Name()]; ok {
		return tool.ErrToolExists
	}
	r[t.Name()] = t
	return nil
}
func (r mapRegistry) Get(name string) (tool.Tool, bool) { t, ok := r[name]; return t, ok }
func (r mapRegistry) List() []tool.Tool                 { return nil }
func (r mapRegistry) Names() []string                   { return nil }
func (r mapRegistry) Has(name string) bool              { _, ok := r[name]; return ok }
func (r mapRegistry) Unregister(name string) error      { delete(r, name); return nil }

func TestPack_ToolNames(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice for pack with no tools", func(t *testing.T) {
		t.Parallel()

		p := &pack.Pack{}
		if names := p.ToolNames(); len(names) != 0 {
			t.Errorf("ToolNames() len = %d, want 0", len(names))
		}
	})

	t.Run("returns all tool names in order", func(t *testing.T) {
		t.Parallel()

		p := &pack.Pack{
			Tools: []tool.Tool{
				mockTool{name: "pdf-operations"},
				mockTool{name: "web-search"},
			},
		}

		names := p.ToolNames()
		if len(names) != 2 {
			t.Fatalf("ToolNames() len = %d, want 2", len(names))
		}
		if names[0] != "pdf-operations" || names[1] != "web-search" {
			t.Errorf("ToolNames() = %v", names)
		}
	})
}

func TestPack_GetTool(t *testing.T) {
	t.Parallel()

	p := pack.NewBuilder("github").AddTool(mockTool{name: "github-operations"}).Build()

	if _, ok := p.GetTool("github-operations"); !ok {
		t.Error("GetTool(github-operations) should be found")
	}
	if _, ok := p.GetTool("missing"); ok {
		t.Error("GetTool(missing) should not be found")
	}
}

func TestPack_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pack    *pack.Pack
		wantErr error
	}{
		{
			name: "valid",
			pack: pack.NewBuilder("cv").AddTools(mockTool{name: "a"}, mockTool{name: "b"}).Build(),
		},
		{
			name:    "missing name",
			pack:    pack.NewBuilder("").Build(),
			wantErr: pack.ErrInvalidPack,
		},
		{
			name:    "duplicate tool",
			pack:    pack.NewBuilder("cv").AddTools(mockTool{name: "a"}, mockTool{name: "a"}).Build(),
			wantErr: pack.ErrDuplicateTool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.pack.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	p := pack.NewBuilder("github").
		WithDescription("GitHub repository operations").
		WithVersion("1.0.0").
		WithMetadata("provider", "go-github").
		AddTool(mockTool{name: "github-operations"}).
		Build()

	if p.Description != "GitHub repository operations" {
		t.Errorf("Description = %s", p.Description)
	}
	if p.Version != "1.0.0" {
		t.Errorf("Version = %s", p.Version)
	}
	if p.Metadata["provider"] != "go-github" {
		t.Errorf("Metadata[provider] = %s", p.Metadata["provider"])
	}
	if len(p.Tools) != 1 {
		t.Errorf("Tools len = %d, want 1", len(p.Tools))
	}
}

func TestInstall(t *testing.T) {
	t.Parallel()

	t.Run("registers every tool", func(t *testing.T) {
		t.Parallel()

		reg := mapRegistry{}
		p := pack.NewBuilder("cv").AddTools(mockTool{name: "pdf-operations"}, mockTool{name: "web-search"}).Build()

		if err := pack.Install(p, reg); err != nil {
			t.Fatalf("Install() error = %v", err)
		}
		if !reg.Has("pdf-operations") || !reg.Has("web-search") {
			t.Errorf("registry = %v", reg)
		}
	})

	t.Run("fails on conflicting tool", func(t *testing.T) {
		t.Parallel()

		reg := mapRegistry{"web-search": mockTool{name: "web-search"}}
		p := pack.NewBuilder("cv").AddTool(mockTool{name: "web-search"}).Build()

		if err := pack.Install(p, reg); !errors.Is(err, tool.ErrToolExists) {
			t.Errorf("Install() error = %v, want ErrToolExists", err)
		}
	})
}
