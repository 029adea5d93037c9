// Package projector maps a resolved WSDL service model onto OpenAPI 3.0
// structures. Every operation becomes a POST path item keyed by operation
// name, request and response payloads become JSON media types, and every
// named schema type reachable from an operation is emitted as a component
// schema referenced by $ref.
package projector

import (
	"fmt"
	"net/url"

	"github.com/erraggy/wsdltools/internal/httputil"
	"github.com/erraggy/wsdltools/openapi"
	"github.com/erraggy/wsdltools/wsdl"
	"github.com/erraggy/wsdltools/wsdlerrors"
	"github.com/erraggy/wsdltools/xsd"
)

// TagSOAPOperations is the tag attached to every projected operation.
const TagSOAPOperations = "SOAP Operations"

// ContentTypeJSON is the media type used for all projected bodies.
const ContentTypeJSON = "application/json"

// Projection holds the document fragments the projector produces. The
// assembler combines them with info metadata into a complete document.
type Projection struct {
	Paths   openapi.Paths
	Schemas map[string]*openapi.Schema
	Servers []*openapi.Server
	Tags    []*openapi.Tag
}

// Projector projects one service model onto OpenAPI structures. A Projector
// is used for exactly one projection and must not be shared.
type Projector struct {
	// Logger receives diagnostic output; nil disables logging
	Logger wsdl.Logger
	// SOAPExtras adds SOAP transport details (SOAPAction header parameters)
	// that have no REST equivalent; off by default
	SOAPExtras bool

	graph     *xsd.Graph
	namespace string
	schemas   map[string]*openapi.Schema
	emitting  map[string]bool
	currentOp string
}

// New creates a projector for one service model.
func New() *Projector {
	return &Projector{}
}

// Project is a convenience that projects with a fresh projector.
func Project(model *wsdl.Model, graph *xsd.Graph) (*Projection, error) {
	return New().Project(model, graph)
}

// Project walks every operation of the model, emitting one path item per
// operation and accumulating component schemas for every named type the
// operations can reach. Unreachable schema types are not emitted.
func (p *Projector) Project(model *wsdl.Model, graph *xsd.Graph) (*Projection, error) {
	p.graph = graph
	p.namespace = model.TargetNamespace
	p.schemas = make(map[string]*openapi.Schema)
	p.emitting = make(map[string]bool)

	paths := make(openapi.Paths, len(model.Operations))
	for _, op := range model.Operations {
		item, err := p.projectOperation(op)
		if err != nil {
			return nil, err
		}
		paths["/"+op.Name] = item
	}

	proj := &Projection{
		Paths:   paths,
		Schemas: p.schemas,
		Servers: projectServers(model),
	}
	if len(model.Operations) > 0 {
		proj.Tags = []*openapi.Tag{{
			Name:        TagSOAPOperations,
			Description: "Operations translated from WSDL portType declarations.",
		}}
	}

	p.logger().Debug("projected service model",
		"paths", len(proj.Paths), "schemas", len(proj.Schemas), "servers", len(proj.Servers))
	return proj, nil
}

// projectOperation maps one operation onto a path item. All WSDL operations
// are remote procedure invocations, so each projects onto POST regardless of
// what the operation does.
func (p *Projector) projectOperation(op *wsdl.Operation) (*openapi.PathItem, error) {
	p.currentOp = op.Name
	defer func() { p.currentOp = "" }()

	out := &openapi.Operation{
		OperationID: op.Name,
		Summary:     op.Name,
		Description: op.Doc,
		Tags:        []string{TagSOAPOperations},
		Responses:   make(openapi.Responses, 1+len(op.Faults)),
	}
	if out.Description == "" {
		// Binding style shows up in documentation text only; it never
		// alters the projected schema shape.
		style := op.Style
		if style == "" {
			style = wsdl.DefaultStyle
		}
		out.Description = fmt.Sprintf("SOAP %s-style operation: %s", style, op.Name)
	}

	if op.Input != nil && len(op.Input.Parts) > 0 {
		schema, err := p.payloadSchema(op.Input)
		if err != nil {
			return nil, err
		}
		out.RequestBody = &openapi.RequestBody{
			Required: true,
			Content:  jsonContent(schema),
		}
	}

	// Every operation gets a success response. One-way operations and empty
	// output messages acknowledge with no body.
	success := &openapi.Response{Description: "Successful response"}
	if op.Output != nil && len(op.Output.Parts) > 0 {
		schema, err := p.payloadSchema(op.Output)
		if err != nil {
			return nil, err
		}
		success.Content = jsonContent(schema)
	}
	out.Responses[httputil.StatusSuccess] = success

	// Faults have no HTTP status in WSDL; synthesize consecutive 5xx codes
	// in declaration order.
	for i, f := range op.Faults {
		schema, err := p.payloadSchema(f.Payload)
		if err != nil {
			return nil, err
		}
		out.Responses[httputil.FaultCode(i)] = &openapi.Response{
			Description: fmt.Sprintf("Fault: %s", f.Name),
			Content:     jsonContent(schema),
		}
	}

	if p.SOAPExtras {
		p.addSOAPExtras(out, op, success)
	}

	return &openapi.PathItem{Post: out}, nil
}

// addSOAPExtras layers SOAP transport details onto a projected operation:
// header parameters plus text/xml envelope examples beside the JSON bodies.
func (p *Projector) addSOAPExtras(out *openapi.Operation, op *wsdl.Operation, success *openapi.Response) {
	out.Parameters = soapHeaderParams(op)

	if out.RequestBody != nil && op.Input != nil {
		out.RequestBody.Content[ContentTypeXML] = xmlContent(
			envelopeExample(payloadElement(op.Input), p.namespace))
	}
	if success.Content != nil && op.Output != nil {
		success.Content[ContentTypeXML] = xmlContent(
			envelopeExample(payloadElement(op.Output), p.namespace))
	}
	for i, f := range op.Faults {
		if r, ok := out.Responses[httputil.FaultCode(i)]; ok {
			r.Content[ContentTypeXML] = xmlContent(faultExample(f.Name))
		}
	}
}

// payloadElement names the body element a payload carries on the wire: the
// single part's type for collapsed messages, the message name otherwise.
func payloadElement(pl *wsdl.Payload) string {
	if ref, ok := pl.SinglePart(); ok && ref.Name != "" {
		return ref.Name
	}
	return pl.Message
}

// payloadSchema maps a message payload to a schema. A single-part message
// collapses to its part's type; a multi-part message becomes an inline
// object with one required property per part.
func (p *Projector) payloadSchema(pl *wsdl.Payload) (*openapi.Schema, error) {
	if ref, ok := pl.SinglePart(); ok {
		return p.refSchema(ref)
	}

	props := make(map[string]*openapi.Schema, len(pl.Parts))
	required := make([]string, 0, len(pl.Parts))
	for _, part := range pl.Parts {
		s, err := p.refSchema(part.Type)
		if err != nil {
			return nil, err
		}
		props[part.Name] = s
		required = append(required, part.Name)
	}
	return &openapi.Schema{Type: "object", Properties: props, Required: required}, nil
}

// refSchema maps a type reference to a schema: named references become $ref
// pointers with the target registered as a component, inline nodes become
// literal schemas.
func (p *Projector) refSchema(ref xsd.TypeRef) (*openapi.Schema, error) {
	switch {
	case ref.Name != "":
		if err := p.emitComponent(ref.Name); err != nil {
			return nil, err
		}
		return openapi.RefTo(ref.Name), nil
	case ref.Inline != nil:
		return p.nodeSchema(ref.Inline)
	default:
		return nil, &wsdlerrors.ProjectionError{
			Operation: p.currentOp,
			Message:   "type reference resolves to neither a name nor an inline node",
		}
	}
}

// emitComponent registers the named node as a component schema, following
// its own references transitively. Re-entry on a name already being emitted
// is how cycles terminate: the in-progress component keeps the $ref and the
// target completes when the stack unwinds.
func (p *Projector) emitComponent(name string) error {
	if _, done := p.schemas[name]; done {
		return nil
	}
	if p.emitting[name] {
		return nil
	}

	node, ok := p.graph.Lookup(name)
	if !ok {
		return &wsdlerrors.ProjectionError{
			Ref:       name,
			Operation: p.currentOp,
			Message:   "referenced type is not in the resolved graph",
		}
	}

	p.emitting[name] = true
	defer delete(p.emitting, name)

	s, err := p.nodeSchema(node)
	if err != nil {
		return err
	}
	if node.Doc != "" && s.Ref == "" {
		s.Description = node.Doc
	}
	p.schemas[name] = s
	return nil
}

// nodeSchema maps one graph node to a schema literal.
func (p *Projector) nodeSchema(n *xsd.Node) (*openapi.Schema, error) {
	switch n.Kind {
	case xsd.KindPrimitive:
		return primitiveSchema(n.Primitive), nil

	case xsd.KindEnum:
		base := primitiveSchema(n.Primitive)
		base.Enum = make([]any, 0, len(n.Values))
		for _, v := range n.Values {
			base.Enum = append(base.Enum, v)
		}
		return base, nil

	case xsd.KindObject:
		return p.objectSchema(n)

	case xsd.KindArray:
		if n.Item == nil {
			return nil, &wsdlerrors.ProjectionError{
				Ref:       n.Name,
				Operation: p.currentOp,
				Message:   "array node has no item type",
			}
		}
		item, err := p.refSchema(*n.Item)
		if err != nil {
			return nil, err
		}
		return &openapi.Schema{Type: "array", Items: item}, nil

	case xsd.KindReference:
		if err := p.emitComponent(n.Target); err != nil {
			return nil, err
		}
		return openapi.RefTo(n.Target), nil

	default:
		return nil, &wsdlerrors.ProjectionError{
			Ref:       n.Name,
			Operation: p.currentOp,
			Message:   fmt.Sprintf("node kind %s has no schema mapping", n.Kind),
		}
	}
}

func (p *Projector) objectSchema(n *xsd.Node) (*openapi.Schema, error) {
	s := &openapi.Schema{Type: "object"}
	if len(n.Fields) == 0 {
		return s, nil
	}

	s.Properties = make(map[string]*openapi.Schema, len(n.Fields))
	for _, f := range n.Fields {
		fs, err := p.refSchema(f.Type)
		if err != nil {
			return nil, err
		}
		if f.IsArray {
			fs = &openapi.Schema{Type: "array", Items: fs}
		}
		// nullable and description cannot sit beside $ref in 3.0; they are
		// dropped for referenced types rather than inlining the target.
		if fs.Ref == "" {
			if f.Nillable {
				fs.Nullable = true
			}
			if f.Doc != "" && fs.Description == "" {
				fs.Description = f.Doc
			}
		}
		s.Properties[f.Name] = fs
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s, nil
}

// FallbackServerURL is emitted when no endpoint location resolves to a
// usable base URL, so the document always names at least one server.
const FallbackServerURL = "https://example.com"

// projectServers maps service endpoints to servers. Each location is
// reduced to its scheme://host base URL, deduplicating ports that share a
// host behind different paths. Locations that do not parse as absolute
// URLs contribute nothing.
func projectServers(model *wsdl.Model) []*openapi.Server {
	var servers []*openapi.Server
	seen := make(map[string]bool, len(model.Endpoints))
	for _, ep := range model.Endpoints {
		base, ok := baseURL(ep.Location)
		if !ok || seen[base] {
			continue
		}
		seen[base] = true
		servers = append(servers, &openapi.Server{
			URL:         base,
			Description: "SOAP Service Endpoint",
		})
	}
	if len(servers) == 0 {
		servers = append(servers, &openapi.Server{
			URL:         FallbackServerURL,
			Description: "SOAP Service Endpoint",
		})
	}
	return servers
}

func baseURL(location string) (string, bool) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}

func jsonContent(s *openapi.Schema) map[string]*openapi.MediaType {
	return map[string]*openapi.MediaType{
		ContentTypeJSON: {Schema: s},
	}
}

func (p *Projector) logger() wsdl.Logger {
	if p.Logger == nil {
		return xsd.NopLogger()
	}
	return p.Logger
}
