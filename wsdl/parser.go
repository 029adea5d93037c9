package wsdl

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/erraggy/wsdltools/internal/issues"
	"github.com/erraggy/wsdltools/internal/naming"
	"github.com/erraggy/wsdltools/internal/severity"
	"github.com/erraggy/wsdltools/wsdlerrors"
	"github.com/erraggy/wsdltools/xsd"
)

// Logger is the diagnostic interface shared across the conversion pipeline.
type Logger = xsd.Logger

// Parse reads and decodes a WSDL document from a file.
func Parse(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read WSDL document: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes a WSDL document. The embedded schema fragments come out
// on Definitions.Schemas, ready for type resolution alongside any imported
// fragments the caller fetched separately.
func ParseBytes(data []byte) (*Definitions, error) {
	var defs Definitions
	if err := xml.Unmarshal(data, &defs); err != nil {
		return nil, &wsdlerrors.ParseError{
			Source:  "wsdl",
			Message: "document is not a well-formed WSDL definitions element",
			Cause:   err,
		}
	}
	return &defs, nil
}

// Builder resolves a parsed Definitions against a type graph into a Model.
// A Builder is used for one document and must not be shared.
type Builder struct {
	// Logger receives diagnostic output; nil disables logging
	Logger Logger

	defs     *Definitions
	graph    *xsd.Graph
	messages map[string]*Message
	actions  map[string]string
	styles   map[string]string
	warnings []issues.Issue
}

// NewBuilder creates a builder for one parsed document.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildModel is a convenience that builds the model with a fresh builder.
func BuildModel(defs *Definitions, graph *xsd.Graph) (*Model, []issues.Issue, error) {
	return NewBuilder().Build(defs, graph)
}

// Build walks the portTypes of defs and resolves every operation's messages
// against graph. Structural gaps that leave an operation meaningful degrade
// to warnings; references the graph cannot satisfy are fatal.
func (b *Builder) Build(defs *Definitions, graph *xsd.Graph) (*Model, []issues.Issue, error) {
	b.defs = defs
	b.graph = graph
	b.indexMessages()
	b.indexBindings()

	model := &Model{
		Service:         b.serviceName(),
		Doc:             b.serviceDoc(),
		TargetNamespace: defs.TargetNamespace,
		Endpoints:       b.endpoints(),
	}

	for _, pt := range defs.PortTypes {
		for _, po := range pt.Operations {
			op, err := b.buildOperation(pt, po)
			if err != nil {
				return nil, b.warnings, err
			}
			model.Operations = append(model.Operations, op)
		}
	}

	b.logger().Debug("built service model",
		"service", model.Service,
		"operations", len(model.Operations),
		"endpoints", len(model.Endpoints),
		"warnings", len(b.warnings))
	return model, b.warnings, nil
}

func (b *Builder) indexMessages() {
	b.messages = make(map[string]*Message, len(b.defs.Messages))
	for _, m := range b.defs.Messages {
		if m.Name == "" {
			continue
		}
		b.messages[m.Name] = m
	}
}

// indexBindings maps operation names to their soapAction and style values.
// A soap:operation style overrides the soap:binding default. A binding
// whose type matches no portType contributes nothing and is reported.
func (b *Builder) indexBindings() {
	portTypes := make(map[string]bool, len(b.defs.PortTypes))
	for _, pt := range b.defs.PortTypes {
		portTypes[pt.Name] = true
	}

	b.actions = make(map[string]string)
	b.styles = make(map[string]string)
	for _, bind := range b.defs.Bindings {
		target := naming.Local(bind.Type)
		if !portTypes[target] {
			b.warn(issues.Issue{
				Path:     issues.FormatPath("bindings", bind.Name),
				Message:  fmt.Sprintf("binding references unknown portType %q", target),
				Severity: severity.SeverityWarning,
				Code:     issues.CodeUnmatchedBinding,
				Value:    bind.Type,
			})
			continue
		}
		bindStyle := DefaultStyle
		if bind.SOAP != nil && bind.SOAP.Style != "" {
			bindStyle = bind.SOAP.Style
		}
		for _, bop := range bind.Operations {
			b.styles[bop.Name] = bindStyle
			if bop.SOAP == nil {
				continue
			}
			if bop.SOAP.SOAPAction != "" {
				b.actions[bop.Name] = bop.SOAP.SOAPAction
			}
			if bop.SOAP.Style != "" {
				b.styles[bop.Name] = bop.SOAP.Style
			}
		}
	}
}

func (b *Builder) buildOperation(pt *PortType, po *PortOperation) (*Operation, error) {
	op := &Operation{
		Name:       po.Name,
		Doc:        po.Doc,
		SOAPAction: b.actions[po.Name],
		Style:      b.styles[po.Name],
	}
	if op.Style == "" {
		op.Style = DefaultStyle
	}

	if po.Input != nil && po.Input.Message != "" {
		in, err := b.resolvePayload(po.Input.Message, pt.Name, po.Name)
		if err != nil {
			return nil, err
		}
		op.Input = in
	}

	if po.Output != nil && po.Output.Message != "" {
		local := naming.Local(po.Output.Message)
		if _, ok := b.messages[local]; !ok {
			// Degrade to a one-way operation rather than failing the
			// whole conversion.
			b.warn(issues.Issue{
				Path:     issues.FormatPath("portTypes", pt.Name, po.Name, "output"),
				Message:  fmt.Sprintf("output references unknown message %q", local),
				Severity: severity.SeverityWarning,
				Code:     issues.CodeMissingOutputMessage,
				Value:    po.Output.Message,
			})
		} else {
			out, err := b.resolvePayload(po.Output.Message, pt.Name, po.Name)
			if err != nil {
				return nil, err
			}
			op.Output = out
		}
	}

	for _, f := range po.Faults {
		if f.Message == "" {
			continue
		}
		payload, err := b.resolvePayload(f.Message, pt.Name, po.Name)
		if err != nil {
			return nil, err
		}
		name := f.Name
		if name == "" {
			name = payload.Message
		}
		op.Faults = append(op.Faults, OperationFault{Name: name, Payload: payload})
	}

	return op, nil
}

// resolvePayload resolves a message reference and every part within it.
// Unknown messages and parts naming types absent from the graph are fatal:
// the operation cannot be projected without them.
func (b *Builder) resolvePayload(msgRef, portType, operation string) (*Payload, error) {
	local := naming.Local(msgRef)
	msg, ok := b.messages[local]
	if !ok {
		return nil, &wsdlerrors.ParseError{
			Source:  "wsdl",
			Message: fmt.Sprintf("operation %s.%s references unknown message %q", portType, operation, local),
		}
	}

	payload := &Payload{Message: local}
	for _, part := range msg.Parts {
		ref := part.Element
		if ref == "" {
			ref = part.Type
		}
		if ref == "" {
			return nil, &wsdlerrors.ParseError{
				Source:  "wsdl",
				Message: fmt.Sprintf("message %q part %q names neither an element nor a type", local, part.Name),
			}
		}
		typeRef, ok := b.graph.RefFor(ref)
		if !ok {
			return nil, &wsdlerrors.ResolutionError{
				Kind:    wsdlerrors.ResolutionUnknownType,
				Name:    naming.Local(ref),
				Message: fmt.Sprintf("referenced by message %q part %q", local, part.Name),
			}
		}
		payload.Parts = append(payload.Parts, PayloadPart{Name: part.Name, Type: typeRef})
	}
	return payload, nil
}

// serviceName prefers the first service element's name, then the definitions
// name attribute.
func (b *Builder) serviceName() string {
	for _, svc := range b.defs.Services {
		if svc.Name != "" {
			return svc.Name
		}
	}
	return b.defs.Name
}

func (b *Builder) serviceDoc() string {
	for _, svc := range b.defs.Services {
		if svc.Doc != "" {
			return svc.Doc
		}
	}
	return b.defs.Doc
}

func (b *Builder) endpoints() []Endpoint {
	var eps []Endpoint
	for _, svc := range b.defs.Services {
		for _, port := range svc.Ports {
			if port.Address == nil || port.Address.Location == "" {
				continue
			}
			eps = append(eps, Endpoint{
				Service:  svc.Name,
				Port:     port.Name,
				Binding:  naming.Local(port.Binding),
				Location: port.Address.Location,
			})
		}
	}
	return eps
}

func (b *Builder) warn(i issues.Issue) {
	b.warnings = append(b.warnings, i)
}

func (b *Builder) logger() Logger {
	if b.Logger == nil {
		return xsd.NopLogger()
	}
	return b.Logger
}
