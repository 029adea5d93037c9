// Package wsdlerrors provides structured error types for the wsdltools library.
//
// Import path: github.com/erraggy/wsdltools/wsdlerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ParseError]: malformed XML or missing WSDL structure
//   - [ResolutionError]: XSD type resolution failures
//   - [ProjectionError]: dangling schema references during OpenAPI projection
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: matches any [ParseError]
//   - [ErrResolution]: matches any [ResolutionError]
//   - [ErrUnknownType]: matches [ResolutionError] with Kind=ResolutionUnknownType
//   - [ErrInvalidCardinality]: matches [ResolutionError] with Kind=ResolutionInvalidCardinality
//   - [ErrCyclicWithoutAnchor]: matches [ResolutionError] with Kind=ResolutionCyclicWithoutAnchor
//   - [ErrProjection]: matches any [ProjectionError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Fatal vs Recoverable
//
// Every error in this package is fatal to a conversion: when one is returned
// no document is produced. Recoverable conditions (unmatched bindings,
// one-way operations, ambiguous restrictions) are not errors; they are
// reported as warnings on the conversion result instead.
package wsdlerrors
