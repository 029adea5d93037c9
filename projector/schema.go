package projector

import (
	"github.com/erraggy/wsdltools/openapi"
	"github.com/erraggy/wsdltools/xsd"
)

// primitiveMapping is the fixed XSD to JSON Schema type mapping. Formats
// follow the OpenAPI 3.0 registry where one exists. The unbounded
// xsd:integer family carries no format; decimal widens to double.
var primitiveMapping = map[xsd.Primitive]openapi.Schema{
	xsd.PrimitiveString:   {Type: "string"},
	xsd.PrimitiveInt:      {Type: "integer", Format: "int32"},
	xsd.PrimitiveInteger:  {Type: "integer"},
	xsd.PrimitiveLong:     {Type: "integer", Format: "int64"},
	xsd.PrimitiveFloat:    {Type: "number", Format: "float"},
	xsd.PrimitiveDouble:   {Type: "number", Format: "double"},
	xsd.PrimitiveDecimal:  {Type: "number", Format: "double"},
	xsd.PrimitiveBoolean:  {Type: "boolean"},
	xsd.PrimitiveDate:     {Type: "string", Format: "date"},
	xsd.PrimitiveDateTime: {Type: "string", Format: "date-time"},
	xsd.PrimitiveTime:     {Type: "string", Format: "time"},
	xsd.PrimitiveBase64:   {Type: "string", Format: "byte"},
	xsd.PrimitiveHex:      {Type: "string", Format: "binary"},
	xsd.PrimitiveURI:      {Type: "string", Format: "uri"},
}

// primitiveSchema returns a fresh schema for the given primitive. Unmapped
// values fall back to a plain string, matching the resolver's permissive
// treatment of unrecognized built-ins.
func primitiveSchema(p xsd.Primitive) *openapi.Schema {
	if m, ok := primitiveMapping[p]; ok {
		s := m
		return &s
	}
	return &openapi.Schema{Type: "string"}
}
