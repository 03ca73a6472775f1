// Package agenttoolkit provides the version information for agent-toolkit.
package agenttoolkit

// Version is the current version of agent-toolkit.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
