package wsdl

import "github.com/erraggy/wsdltools/xsd"

// Model is the resolved view of one WSDL document: every operation with its
// messages flattened to schema type references, plus the concrete endpoints.
// It is the hand-off between parsing and projection.
type Model struct {
	// Service is the service name, falling back to the definitions name
	// when no service element is present
	Service string
	// Doc is the service-level documentation, if any
	Doc string
	// TargetNamespace of the definitions element
	TargetNamespace string
	// Operations in portType declaration order
	Operations []*Operation
	// Endpoints collected from every service port with an address
	Endpoints []Endpoint
}

// DefaultStyle is assumed when neither the binding nor the operation
// declares a SOAP style.
const DefaultStyle = "document"

// Operation is one resolved operation. Output is nil for one-way operations.
// Style is "document" or "rpc"; it affects only documentation text, never
// the projected schema shape.
type Operation struct {
	Name       string
	Doc        string
	SOAPAction string
	Style      string
	Input      *Payload
	Output     *Payload
	Faults     []OperationFault
}

// Payload is a message with its parts resolved against the type graph.
type Payload struct {
	// Message is the local name of the WSDL message
	Message string
	Parts   []PayloadPart
}

// PayloadPart is one message part bound to a schema type.
type PayloadPart struct {
	Name string
	Type xsd.TypeRef
}

// OperationFault is one declared fault with its resolved message.
type OperationFault struct {
	Name    string
	Payload *Payload
}

// Endpoint is one service port with a resolved network address.
type Endpoint struct {
	Service  string
	Port     string
	Binding  string
	Location string
}

// SinglePart reports whether the payload collapses to exactly one part, and
// returns that part's type reference when it does. Multi-part payloads keep
// each part as a named property instead.
func (p *Payload) SinglePart() (xsd.TypeRef, bool) {
	if p == nil || len(p.Parts) != 1 {
		return xsd.TypeRef{}, false
	}
	return p.Parts[0].Type, true
}
