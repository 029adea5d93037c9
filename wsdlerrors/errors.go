// Package wsdlerrors provides structured error types for wsdltools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: malformed XML and WSDL structural failures
//   - ResolutionError: XSD type resolution failures (unknown types, bad
//     cardinality, cycles without a named anchor)
//   - ProjectionError: dangling schema references surfacing during OpenAPI
//     projection; indicates an internal consistency bug, not bad input
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := converter.Convert(wsdlBytes)
//	if err != nil {
//	    var resErr *wsdlerrors.ResolutionError
//	    if errors.As(err, &resErr) {
//	        if resErr.Kind == wsdlerrors.ResolutionUnknownType {
//	            // Handle the missing type specifically
//	        }
//	    }
//	}
package wsdlerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates the input is not well-formed XML or not a WSDL document.
	ErrParse = errors.New("parse error")

	// ErrResolution indicates an XSD type resolution failure.
	ErrResolution = errors.New("resolution error")

	// ErrUnknownType indicates a type reference that resolves to no declaration.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidCardinality indicates malformed minOccurs/maxOccurs attributes.
	ErrInvalidCardinality = errors.New("invalid cardinality")

	// ErrCyclicWithoutAnchor indicates a reference cycle through an anonymous
	// type, which has no name the cycle can be anchored to.
	ErrCyclicWithoutAnchor = errors.New("cyclic reference without named anchor")

	// ErrProjection indicates a schema reference dangled during projection.
	ErrProjection = errors.New("projection error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ResolutionKind identifies the category of a resolution failure.
type ResolutionKind int

const (
	// ResolutionUnknownType indicates a type name with no matching declaration.
	ResolutionUnknownType ResolutionKind = iota
	// ResolutionInvalidCardinality indicates unparseable minOccurs/maxOccurs values.
	ResolutionInvalidCardinality
	// ResolutionCyclicWithoutAnchor indicates a cycle through anonymous types.
	ResolutionCyclicWithoutAnchor
)

// String returns the string representation of the resolution kind.
func (k ResolutionKind) String() string {
	switch k {
	case ResolutionUnknownType:
		return "unknown type"
	case ResolutionInvalidCardinality:
		return "invalid cardinality"
	case ResolutionCyclicWithoutAnchor:
		return "cyclic reference without named anchor"
	default:
		return "unknown"
	}
}

// ParseError represents a failure to parse a WSDL or XSD document.
// This includes XML deserialization errors and missing required structure.
type ParseError struct {
	// Source identifies the document ("wsdl" or an import location)
	Source string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResolutionError represents a failure to resolve the <types> section of a
// WSDL into a complete type graph. These are fatal: no document is produced.
type ResolutionError struct {
	// Kind identifies the failure category
	Kind ResolutionKind
	// Name is the type or element name involved (without namespace prefix)
	Name string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ResolutionError) Error() string {
	msg := "resolution error: " + e.Kind.String()
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrResolution, and also the kind-specific sentinel when the
// Kind field matches.
func (e *ResolutionError) Is(target error) bool {
	if target == ErrResolution {
		return true
	}
	switch target {
	case ErrUnknownType:
		return e.Kind == ResolutionUnknownType
	case ErrInvalidCardinality:
		return e.Kind == ResolutionInvalidCardinality
	case ErrCyclicWithoutAnchor:
		return e.Kind == ResolutionCyclicWithoutAnchor
	}
	return false
}

// ProjectionError represents a schema reference that could not be satisfied
// while emitting the OpenAPI document. If resolution and parsing succeeded
// this should be unreachable; treat it as an internal-consistency failure
// rather than a user input problem.
type ProjectionError struct {
	// Ref is the schema name that dangled
	Ref string
	// Operation is the WSDL operation whose projection surfaced the failure
	Operation string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ProjectionError) Error() string {
	msg := "projection error: dangling schema reference"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Operation != "" {
		msg += fmt.Sprintf(" (operation %s)", e.Operation)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ProjectionError has no underlying cause.
func (e *ProjectionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ProjectionError) Is(target error) bool {
	return target == ErrProjection
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
