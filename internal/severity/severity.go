// Package severity provides severity level constants and utilities
// for issues reported by the resolver, parser, projector, and converter packages.
//
// All four severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational messages about translation choices
//   - SeverityWarning: Lossy translations, conservative defaults, or recommendations
//   - SeverityError: Structural violations that make documents invalid
//   - SeverityCritical: Constructs that cannot be translated (data loss)
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue reported during schema
// resolution, WSDL parsing, or OpenAPI projection.
type Severity int

const (
	// SeverityError indicates a structural violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates lossy translations, conservative defaults,
	// or recommendations that don't prevent processing but should be reviewed.
	SeverityWarning

	// SeverityInfo indicates informational messages about translation choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates constructs that cannot be translated without data loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
