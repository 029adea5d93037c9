// Package issues provides a unified issue type for conversion warnings and notices.
package issues

import (
	"fmt"

	"github.com/erraggy/wsdltools/internal/severity"
)

// Code identifies the category of a recoverable structural issue.
type Code string

const (
	// CodeUnmatchedBinding indicates a binding whose operations could not be
	// matched to any portType operation; the binding is omitted from output.
	CodeUnmatchedBinding Code = "unmatched-binding"

	// CodeMissingOutputMessage indicates a one-way operation with no output
	// message; the projected operation has a success code but no body schema.
	CodeMissingOutputMessage Code = "missing-output-message"

	// CodeAmbiguousRestriction indicates a complexContent restriction that was
	// treated as an extension because true field narrowing is unsupported.
	CodeAmbiguousRestriction Code = "ambiguous-restriction"
)

// Issue represents a single problem found during WSDL conversion.
type Issue struct {
	// Path is a dotted path to the problematic construct (e.g., "binding.UserSoapBinding")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Code identifies the issue category for recoverable structural issues
	Code Code
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Code != "" {
		result += fmt.Sprintf(" [%s]", i.Code)
	}
	if i.Context != "" {
		result += fmt.Sprintf(" (Context: %s)", i.Context)
	}
	return result
}
