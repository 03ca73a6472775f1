// Package tool provides the domain model for agent-callable tools.
package tool

// RiskLevel indicates the potential impact of a tool invocation.
type RiskLevel int

const (
	RiskNone   RiskLevel = iota // read-only, no side effects
	RiskLow                     // creates new remote state
	RiskMedium                  // modifies existing remote state
	RiskHigh                    // difficult to reverse
)

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskNone:
		return "none"
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Annotations describe tool behavior to callers such as MCP clients.
type Annotations struct {
	// ReadOnly indicates the tool never changes remote state.
	ReadOnly bool `json:"read_only"`

	// Idempotent indicates repeated calls with the same input yield the same effect.
	Idempotent bool `json:"idempotent"`

	// OpenWorld indicates the tool reaches services outside the process.
	OpenWorld bool `json:"open_world"`

	// RiskLevel indicates the potential impact of an invocation.
	RiskLevel RiskLevel `json:"risk_level"`

	// Tags are arbitrary labels for categorization.
	Tags []string `json:"tags,omitempty"`
}

// DefaultAnnotations returns annotations for a tool that may write.
func DefaultAnnotations() Annotations {
	return Annotations{
		RiskLevel: RiskLow,
	}
}

// ReadOnlyAnnotations returns annotations for a read-only tool.
func ReadOnlyAnnotations() Annotations {
	return Annotations{
		ReadOnly:   true,
		Idempotent: true,
		RiskLevel:  RiskNone,
	}
}

// HasTag reports whether the annotations carry the given tag.
func (a Annotations) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
