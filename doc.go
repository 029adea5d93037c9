// Package wsdltools provides tools for translating WSDL 1.1 service
// descriptions into OpenAPI 3.0 documents.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - xsd: Resolve XML Schema fragments into a graph of named types
//   - wsdl: Parse WSDL documents and flatten them into a service model
//   - projector: Map the service model onto OpenAPI paths and schemas
//   - converter: Orchestrate the full conversion pipeline
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/wsdltools
//
// # Quick Start
//
// Most callers only need the converter package:
//
//	import "github.com/erraggy/wsdltools/converter"
//
//	result, err := converter.Convert("service.wsdl")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("converted %s with %d warning(s)\n",
//		result.ServiceName, result.WarningCount)
//
// The lower-level packages are exported for callers that need intermediate
// representations, such as the resolved type graph or the flattened
// operation list, without generating a document:
//
//	import (
//		"github.com/erraggy/wsdltools/wsdl"
//		"github.com/erraggy/wsdltools/xsd"
//	)
//
//	defs, err := wsdl.ParseBytes(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	graph, warnings, err := xsd.Resolve(defs.Schemas)
//
// # Conversion semantics
//
// WSDL operations are remote procedure invocations, so every operation
// projects onto a POST path named after the operation. Messages become JSON
// request and response bodies, schema types become component schemas
// referenced by $ref, and declared faults become 5xx responses. Translation
// is deterministic: the same input bytes always produce the same document.
//
// Conditions that leave no meaningful output, such as malformed XML or
// message parts naming types no schema declares, fail the conversion with
// an error. Recoverable conditions, such as bindings that match no portType,
// degrade the output and are reported as issues on the conversion result.
//
// This package also carries the build details for the wsdltools binary.
package wsdltools
