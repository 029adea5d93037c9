package converter

import (
	"fmt"
	"os"
	"sort"

	"github.com/erraggy/wsdltools/internal/issues"
	"github.com/erraggy/wsdltools/internal/severity"
	"github.com/erraggy/wsdltools/openapi"
	"github.com/erraggy/wsdltools/projector"
	"github.com/erraggy/wsdltools/wsdl"
	"github.com/erraggy/wsdltools/xsd"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// ConversionResult contains the results of converting a WSDL document
type ConversionResult struct {
	// Document is the assembled OpenAPI document; nil when conversion fails
	Document *openapi.Document
	// ServiceName is the WSDL service name the document was derived from
	ServiceName string
	// OperationCount is the number of operations projected onto paths
	OperationCount int
	// Issues contains all conversion issues in the order they were found
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter handles WSDL to OpenAPI 3.0 conversion
type Converter struct {
	// StrictMode causes conversion to fail on any issues (even warnings)
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// SOAPExtras adds SOAP transport details with no REST equivalent,
	// such as SOAPAction header parameters
	SOAPExtras bool
	// Title overrides the generated document title; defaults to the
	// service name
	Title string
	// Version is the info.version of the generated document.
	// Defaults to "1.0.0"; WSDL has no version concept to derive it from.
	Version string
	// Imports maps schema locations to pre-fetched document bytes for
	// xsd:import and xsd:include targets. The converter performs no I/O
	// of its own to fetch them.
	Imports map[string][]byte
	// Logger receives diagnostic output during conversion; nil disables
	// logging
	Logger wsdl.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// Convert is a convenience function that converts a WSDL file with default
// settings. For converting multiple files with the same configuration,
// create a Converter instance and reuse it.
//
// Example:
//
//	result, err := converter.Convert("service.wsdl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.HasWarnings() {
//	    // Inspect result.Issues
//	}
func Convert(wsdlPath string) (*ConversionResult, error) {
	return New().Convert(wsdlPath)
}

// Convert converts a WSDL file to an OpenAPI document
func (c *Converter) Convert(wsdlPath string) (*ConversionResult, error) {
	data, err := os.ReadFile(wsdlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read WSDL document: %w", err)
	}
	return c.ConvertBytes(data)
}

// ConvertBytes converts an in-memory WSDL document to an OpenAPI document.
//
// A non-nil error with a nil result means the document could not be
// converted at all: malformed XML, references to types no schema declares,
// or invalid cardinality attributes. Recoverable problems surface as
// issues on the result instead.
func (c *Converter) ConvertBytes(data []byte) (*ConversionResult, error) {
	result := &ConversionResult{Issues: make([]ConversionIssue, 0)}

	defs, err := wsdl.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	fragments, err := c.schemaFragments(defs)
	if err != nil {
		return nil, err
	}

	resolver := xsd.NewResolver()
	resolver.Logger = c.Logger
	graph, resolveWarnings, err := resolver.Resolve(fragments)
	if err != nil {
		return nil, err
	}
	result.Issues = append(result.Issues, resolveWarnings...)

	builder := wsdl.NewBuilder()
	builder.Logger = c.Logger
	model, buildWarnings, err := builder.Build(defs, graph)
	if err != nil {
		return nil, err
	}
	result.Issues = append(result.Issues, buildWarnings...)
	result.ServiceName = model.Service
	result.OperationCount = len(model.Operations)

	proj := projector.New()
	proj.Logger = c.Logger
	proj.SOAPExtras = c.SOAPExtras
	projection, err := proj.Project(model, graph)
	if err != nil {
		return nil, err
	}

	result.Document = Assemble(model, projection, c.Title, c.Version)
	result.Issues = append(result.Issues, ConversionIssue{
		Path:     "paths",
		Message:  fmt.Sprintf("Projected %d operation(s) onto POST paths", len(model.Operations)),
		Severity: SeverityInfo,
	})

	c.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// In strict mode, fail on any issues
	if c.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("conversion failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// schemaFragments collects the schemas embedded in the document plus every
// pre-fetched import supplied on the converter.
func (c *Converter) schemaFragments(defs *wsdl.Definitions) ([]*xsd.Schema, error) {
	fragments := make([]*xsd.Schema, 0, len(defs.Schemas)+len(c.Imports))
	fragments = append(fragments, defs.Schemas...)

	// Locations sort so repeated conversions index duplicate declarations
	// identically regardless of map order.
	locations := make([]string, 0, len(c.Imports))
	for location := range c.Imports {
		locations = append(locations, location)
	}
	sort.Strings(locations)

	for _, location := range locations {
		frag, err := xsd.Decode(c.Imports[location])
		if err != nil {
			return nil, fmt.Errorf("imported schema %q: %w", location, err)
		}
		fragments = append(fragments, frag)
	}
	return fragments, nil
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
