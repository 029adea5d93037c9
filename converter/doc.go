// Package converter translates WSDL 1.1 service descriptions into OpenAPI
// 3.0 documents.
//
// The conversion pipeline has four stages: the WSDL document is decoded,
// its schema fragments are resolved into a type graph, the portType
// operations are flattened into a service model, and the model is projected
// onto OpenAPI paths and component schemas. Conversion never performs
// network I/O: imported schema documents must be supplied pre-fetched via
// the Imports field or the WithImport option.
//
// Problems found during conversion split two ways. Conditions that leave no
// meaningful document, such as malformed XML or references to undeclared
// types, abort with an error and no result document. Recoverable conditions
// degrade the output and surface as issues on the ConversionResult, graded
// by severity.
//
// Basic usage:
//
//	result, err := converter.Convert("service.wsdl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
//
// Or with functional options:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithBytes(data),
//	    converter.WithTitle("User Service API"),
//	    converter.WithVersion("2.1.0"),
//	)
package converter
