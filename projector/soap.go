package projector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/erraggy/wsdltools/openapi"
	"github.com/erraggy/wsdltools/wsdl"
)

// ContentTypeXML is the media type attached to SOAP compatibility examples.
const ContentTypeXML = "text/xml"

var builderPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

// envelopeExample renders a skeletal SOAP 1.1 envelope for the given
// element. It is illustrative only: clients still speaking SOAP can see
// the wire shape next to the JSON projection.
func envelopeExample(element, namespace string) string {
	sb := builderPool.Get().(*strings.Builder)
	defer func() {
		sb.Reset()
		builderPool.Put(sb)
	}()

	sb.WriteString(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"`)
	if namespace != "" {
		fmt.Fprintf(sb, " xmlns:tns=%q", namespace)
	}
	sb.WriteString(">\n  <soapenv:Body>\n")
	fmt.Fprintf(sb, "    <tns:%s>...</tns:%s>\n", element, element)
	sb.WriteString("  </soapenv:Body>\n</soapenv:Envelope>")
	return sb.String()
}

// faultExample renders a skeletal SOAP 1.1 fault body.
func faultExample(faultName string) string {
	sb := builderPool.Get().(*strings.Builder)
	defer func() {
		sb.Reset()
		builderPool.Put(sb)
	}()

	sb.WriteString(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">` + "\n")
	sb.WriteString("  <soapenv:Body>\n    <soapenv:Fault>\n")
	sb.WriteString("      <faultcode>soapenv:Server</faultcode>\n")
	fmt.Fprintf(sb, "      <faultstring>%s</faultstring>\n", faultName)
	sb.WriteString("    </soapenv:Fault>\n  </soapenv:Body>\n</soapenv:Envelope>")
	return sb.String()
}

// soapHeaderParams builds the SOAP transport header parameters for one
// operation.
func soapHeaderParams(op *wsdl.Operation) []*openapi.Parameter {
	params := []*openapi.Parameter{{
		Name:        "Content-Type",
		In:          "header",
		Description: "SOAP requests are sent as XML.",
		Schema:      &openapi.Schema{Type: "string", Default: "text/xml; charset=utf-8"},
	}}
	if op.SOAPAction != "" {
		params = append(params, &openapi.Parameter{
			Name:        "SOAPAction",
			In:          "header",
			Description: "SOAP action URI from the operation binding.",
			Schema:      &openapi.Schema{Type: "string", Example: op.SOAPAction},
		})
	}
	return params
}

// xmlContent builds a text/xml media type entry carrying a SOAP example.
func xmlContent(example string) *openapi.MediaType {
	return &openapi.MediaType{
		Schema:  &openapi.Schema{Type: "string"},
		Example: example,
	}
}
