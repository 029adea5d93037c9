package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/wsdltools/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "critical severity with basic fields",
			issue: Issue{
				Path:     "types.User",
				Message:  "Cannot resolve type",
				Severity: severity.SeverityCritical,
			},
			contains:    []string{"✗", "types.User", "Cannot resolve type"},
			notContains: []string{"Context:"},
		},
		{
			name: "warning severity with code",
			issue: Issue{
				Path:     "binding.UserSoapBinding",
				Message:  "Binding has no matching portType operations",
				Severity: severity.SeverityWarning,
				Code:     CodeUnmatchedBinding,
			},
			contains:    []string{"⚠", "binding.UserSoapBinding", "unmatched-binding"},
			notContains: []string{"Context:"},
		},
		{
			name: "info severity with context",
			issue: Issue{
				Path:     "portType.GetUser",
				Message:  "Operation has no output message",
				Severity: severity.SeverityInfo,
				Context:  "a generic success code is emitted with no body schema",
			},
			contains: []string{"ℹ", "Context:", "generic success code"},
		},
		{
			name: "unknown severity",
			issue: Issue{
				Path:     "x",
				Message:  "y",
				Severity: severity.Severity(42),
			},
			contains: []string{"?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.issue.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, not := range tt.notContains {
				assert.NotContains(t, out, not)
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"types"}, "types"},
		{[]string{"types", "User", "fields", "name"}, "types.User.fields.name"},
	}

	for _, tt := range tests {
		got := FormatPath(tt.segments...)
		assert.Equal(t, tt.want, got)
	}
}

func BenchmarkFormatPath(b *testing.B) {
	segments := []string{"message", "GetUserRequest", "part", "parameters"}
	for b.Loop() {
		_ = FormatPath(segments...)
	}
}
