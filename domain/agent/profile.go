// Package agent describes the agent profiles that consume toolkit tools.
package agent

import (
	"fmt"
	"sort"
)

// DefaultModel is the model both built-in profiles are configured for.
const DefaultModel = "gpt-4o-mini"

// Profile names a set of tools exposed to one agent.
type Profile struct {
	// Name identifies the profile, e.g. "github".
	Name string `json:"name" yaml:"name"`

	// Description is a short human-readable summary.
	Description string `json:"description" yaml:"description"`

	// Model is the language model the agent is configured for.
	Model string `json:"model" yaml:"model"`

	// Tools lists the tool names the agent may call.
	Tools []string `json:"tools" yaml:"tools"`
}

// Validate checks that the profile has a name and at least one tool.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if len(p.Tools) == 0 {
		return fmt.Errorf("%w: %s has no tools", ErrInvalidProfile, p.Name)
	}
	return nil
}

// Allows reports whether the profile includes the named tool.
func (p Profile) Allows(toolName string) bool {
	for _, t := range p.Tools {
		if t == toolName {
			return true
		}
	}
	return false
}

// DefaultProfiles returns the built-in profiles keyed by name.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		"github": {
			Name:        "github",
			Description: "Reads issues and repository content and opens issues on GitHub",
			Model:       DefaultModel,
			Tools:       []string{"github-operations"},
		},
		"cv": {
			Name:        "cv",
			Description: "Reads CV documents and searches the web for context about candidates",
			Model:       DefaultModel,
			Tools:       []string{"pdf-operations", "web-search"},
		},
	}
}

// Lookup returns the named profile from profiles.
func Lookup(profiles map[string]Profile, name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return p, nil
}

// SortedNames returns the profile names in lexical order.
func SortedNames(profiles map[string]Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
