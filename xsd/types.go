package xsd

import "encoding/xml"

// Schema is a single <xsd:schema> fragment, either embedded in a WSDL
// <types> section or supplied as a pre-fetched import.
type Schema struct {
	XMLName         xml.Name       `xml:"schema"`
	TargetNamespace string         `xml:"targetNamespace,attr"`
	Imports         []*Import      `xml:"import"`
	Includes        []*Include     `xml:"include"`
	SimpleTypes     []*SimpleType  `xml:"simpleType"`
	ComplexTypes    []*ComplexType `xml:"complexType"`
	Elements        []*Element     `xml:"element"`
}

// Import points to a schema in another namespace to be merged in.
// The referenced document is never fetched here; the caller supplies it
// pre-fetched, keyed by schemaLocation or namespace.
type Import struct {
	XMLName   xml.Name `xml:"import"`
	Namespace string   `xml:"namespace,attr"`
	Location  string   `xml:"schemaLocation,attr"`
}

// Include points to a schema in the same namespace to be merged in.
type Include struct {
	XMLName  xml.Name `xml:"include"`
	Location string   `xml:"schemaLocation,attr"`
}

// SimpleType describes a named or anonymous simple type.
type SimpleType struct {
	XMLName     xml.Name     `xml:"simpleType"`
	Name        string       `xml:"name,attr"`
	Doc         string       `xml:"annotation>documentation"`
	Restriction *Restriction `xml:"restriction"`
}

// Restriction describes the base of a simple type and optionally its
// allowed values.
type Restriction struct {
	XMLName xml.Name       `xml:"restriction"`
	Base    string         `xml:"base,attr"`
	Enum    []*Enumeration `xml:"enumeration"`
}

// Enumeration describes one allowed value for a Restriction.
type Enumeration struct {
	XMLName xml.Name `xml:"enumeration"`
	Value   string   `xml:"value,attr"`
}

// ComplexType describes a structured type.
type ComplexType struct {
	XMLName        xml.Name        `xml:"complexType"`
	Name           string          `xml:"name,attr"`
	Doc            string          `xml:"annotation>documentation"`
	Sequence       *Sequence       `xml:"sequence"`
	All            *All            `xml:"all"`
	ComplexContent *ComplexContent `xml:"complexContent"`
	SimpleContent  *SimpleContent  `xml:"simpleContent"`
}

// Sequence describes an ordered list of child elements.
type Sequence struct {
	XMLName  xml.Name   `xml:"sequence"`
	Elements []*Element `xml:"element"`
}

// All describes an unordered list of child elements. Structurally
// equivalent to Sequence for projection purposes.
type All struct {
	XMLName  xml.Name   `xml:"all"`
	Elements []*Element `xml:"element"`
}

// ComplexContent extends or restricts a base complex type.
type ComplexContent struct {
	XMLName     xml.Name   `xml:"complexContent"`
	Extension   *Extension `xml:"extension"`
	Restriction *Extension `xml:"restriction"`
}

// SimpleContent extends a simple base type with attributes. The base type
// determines the projected schema; attributes have no JSON counterpart.
type SimpleContent struct {
	XMLName   xml.Name   `xml:"simpleContent"`
	Extension *Extension `xml:"extension"`
}

// Extension appends fields to a base type. The same shape decodes
// complexContent restrictions, which are handled as extensions with a
// warning since true field narrowing is not supported.
type Extension struct {
	Base     string    `xml:"base,attr"`
	Sequence *Sequence `xml:"sequence"`
	All      *All      `xml:"all"`
}

// Element describes an element declaration: a field inside a sequence, or
// a named top-level declaration referenced by WSDL message parts.
//
// MinOccurs and MaxOccurs are kept as raw strings so that an absent
// attribute (defaults to 1 per XSD) is distinguishable from an explicit "0".
type Element struct {
	XMLName     xml.Name     `xml:"element"`
	Name        string       `xml:"name,attr"`
	Ref         string       `xml:"ref,attr"`
	Type        string       `xml:"type,attr"`
	MinOccurs   string       `xml:"minOccurs,attr"`
	MaxOccurs   string       `xml:"maxOccurs,attr"`
	Nillable    bool         `xml:"nillable,attr"`
	Doc         string       `xml:"annotation>documentation"`
	ComplexType *ComplexType `xml:"complexType"`
	SimpleType  *SimpleType  `xml:"simpleType"`
}
