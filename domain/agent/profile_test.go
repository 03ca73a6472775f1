package agent_test

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/agent-toolkit/domain/agent"
)

func TestDefaultProfiles(t *testing.T) {
	t.Parallel()

	profiles := agent.DefaultProfiles()

	tests := []struct {
		name  string
		tools []string
	}{
		{"github", []string{"github-operations"}},
		{"cv", []string{"pdf-operations", "web-search"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := agent.Lookup(profiles, tt.name)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if p.Model != agent.DefaultModel {
				t.Errorf("Model = %s, want %s", p.Model, agent.DefaultModel)
			}
			for _, name := range tt.tools {
				if !p.Allows(name) {
					t.Errorf("profile %s should allow %s", tt.name, name)
				}
			}
		})
	}
}

func TestProfile_Allows(t *testing.T) {
	t.Parallel()

	p := agent.DefaultProfiles()["github"]
	if p.Allows("web-search") {
		t.Error("github profile should not allow web-search")
	}
}

func TestProfile_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile agent.Profile
		wantErr bool
	}{
		{"valid", agent.Profile{Name: "x", Tools: []string{"web-search"}}, false},
		{"missing name", agent.Profile{Tools: []string{"web-search"}}, true},
		{"no tools", agent.Profile{Name: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, agent.ErrInvalidProfile) {
				t.Errorf("Validate() error = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestLookup_NotFound(t *testing.T) {
	t.Parallel()

	_, err := agent.Lookup(agent.DefaultProfiles(), "sales")
	if !errors.Is(err, agent.ErrProfileNotFound) {
		t.Errorf("Lookup() error = %v, want ErrProfileNotFound", err)
	}
}

func TestSortedNames(t *testing.T) {
	t.Parallel()

	names := agent.SortedNames(agent.DefaultProfiles())
	if len(names) != 2 || names[0] != "cv" || names[1] != "github" {
		t.Errorf("SortedNames() = %v, want [cv github]", names)
	}
}
