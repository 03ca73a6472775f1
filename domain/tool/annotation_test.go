package tool_test

import (
	"testing"

	"github.com/felixgeelhaar/agent-toolkit/domain/tool"
)

func TestRiskLevel_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    tool.RiskLevel
		expected string
	}{
		{tool.RiskNone, "none"},
		{tool.RiskLow, "low"},
		{tool.RiskMedium, "medium"},
		{tool.RiskHigh, "high"},
		{tool.RiskLevel(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if got := tt.level.String(); got != tt.expected {
				t.Errorf("RiskLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadOnlyAnnotations(t *testing.T) {
	t.Parallel()

	a := tool.ReadOnlyAnnotations()

	if !a.ReadOnly {
		t.Error("ReadOnlyAnnotations().ReadOnly should be true")
	}
	if !a.Idempotent {
		t.Error("ReadOnlyAnnotations().Idempotent should be true")
	}
	if a.RiskLevel != tool.RiskNone {
		t.Errorf("ReadOnlyAnnotations().RiskLevel = %v, want %v", a.RiskLevel, tool.RiskNone)
	}
}

func TestDefaultAnnotations(t *testing.T) {
	t.Parallel()

	a := tool.DefaultAnnotations()

	if a.ReadOnly {
		t.Error("DefaultAnnotations().ReadOnly should be false")
	}
	if a.RiskLevel != tool.RiskLow {
		t.Errorf("DefaultAnnotations().RiskLevel = %v, want %v", a.RiskLevel, tool.RiskLow)
	}
}

func TestAnnotations_HasTag(t *testing.T) {
	t.Parallel()

	a := tool.Annotations{Tags: []string{"github", "issues"}}

	if !a.HasTag("issues") {
		t.Error("HasTag(issues) = false, want true")
	}
	if a.HasTag("pdf") {
		t.Error("HasTag(pdf) = true, want false")
	}
}
