package wsdl

import (
	"encoding/xml"

	"github.com/erraggy/wsdltools/xsd"
)

// Definitions is the root element of a WSDL 1.1 document.
//
// Tags match by local name only: namespace prefixes vary wildly across real
// documents and encoding/xml resolves the local part regardless of prefix.
type Definitions struct {
	XMLName         xml.Name      `xml:"definitions"`
	Name            string        `xml:"name,attr"`
	TargetNamespace string        `xml:"targetNamespace,attr"`
	Doc             string        `xml:"documentation"`
	Schemas         []*xsd.Schema `xml:"types>schema"`
	Imports         []*Import     `xml:"import"`
	Messages        []*Message    `xml:"message"`
	PortTypes       []*PortType   `xml:"portType"`
	Bindings        []*Binding    `xml:"binding"`
	Services        []*Service    `xml:"service"`
}

// Import points to another WSDL document to be merged at root level.
type Import struct {
	Namespace string `xml:"namespace,attr"`
	Location  string `xml:"location,attr"`
}

// Message names a unit of data exchanged by an operation.
type Message struct {
	Name  string  `xml:"name,attr"`
	Parts []*Part `xml:"part"`
}

// Part binds one named slot of a message to a schema element or type.
// Exactly one of Element and Type is set in a valid document.
type Part struct {
	Name    string `xml:"name,attr"`
	Element string `xml:"element,attr"`
	Type    string `xml:"type,attr"`
}

// PortType groups the abstract operations of a service interface.
type PortType struct {
	Name       string           `xml:"name,attr"`
	Operations []*PortOperation `xml:"operation"`
}

// PortOperation is one abstract operation with its message exchange pattern:
// request-response when both Input and Output are present, one-way when only
// Input is.
type PortOperation struct {
	Name   string   `xml:"name,attr"`
	Doc    string   `xml:"documentation"`
	Input  *IO      `xml:"input"`
	Output *IO      `xml:"output"`
	Faults []*Fault `xml:"fault"`
}

// IO links an operation's input or output to a message by qualified name.
type IO struct {
	Name    string `xml:"name,attr"`
	Message string `xml:"message,attr"`
}

// Fault links one named fault of an operation to a message.
type Fault struct {
	Name    string `xml:"name,attr"`
	Message string `xml:"message,attr"`
}

// Binding ties a portType to a concrete protocol. The nested soap:binding
// and soap:operation extension elements share local names with their WSDL
// parents, which is why SOAP and SOAPOperation match plain "binding" and
// "operation" tags here.
type Binding struct {
	Name       string              `xml:"name,attr"`
	Type       string              `xml:"type,attr"`
	SOAP       *SOAPBinding        `xml:"binding"`
	Operations []*BindingOperation `xml:"operation"`
}

// SOAPBinding is the soap:binding extension element.
type SOAPBinding struct {
	Style     string `xml:"style,attr"`
	Transport string `xml:"transport,attr"`
}

// BindingOperation carries the per-operation SOAP extension data.
type BindingOperation struct {
	Name string         `xml:"name,attr"`
	SOAP *SOAPOperation `xml:"operation"`
}

// SOAPOperation is the soap:operation extension element.
type SOAPOperation struct {
	SOAPAction string `xml:"soapAction,attr"`
	Style      string `xml:"style,attr"`
}

// Service exposes a set of ports, each a binding at a network address.
type Service struct {
	Name  string  `xml:"name,attr"`
	Doc   string  `xml:"documentation"`
	Ports []*Port `xml:"port"`
}

// Port is one concrete endpoint of a service. Address matches both
// soap:address and soap12:address by local name; the first one present wins.
type Port struct {
	Name    string   `xml:"name,attr"`
	Binding string   `xml:"binding,attr"`
	Address *Address `xml:"address"`
}

// Address is the endpoint location extension element.
type Address struct {
	Location string `xml:"location,attr"`
}
