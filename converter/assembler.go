package converter

import (
	"github.com/erraggy/wsdltools/openapi"
	"github.com/erraggy/wsdltools/projector"
	"github.com/erraggy/wsdltools/wsdl"
)

// DefaultVersion is the info.version emitted when none is configured.
// WSDL carries no service version to derive one from.
const DefaultVersion = "1.0.0"

// DefaultTitle is the info.title emitted when neither a title override nor
// a service name is available.
const DefaultTitle = "SOAP Web Service"

// DefaultDescription is the info.description emitted when the WSDL carries
// no documentation element.
const DefaultDescription = "SOAP Web Service converted from WSDL"

// DefaultContactName is the info.contact.name stamped on every document.
const DefaultContactName = "API Support"

// Assemble combines projected fragments into a complete document. It is a
// pure function of its inputs: the same model and projection always yield
// an identical document.
//
// The openapi, info, and paths members are always present, as OpenAPI 3.0
// requires, even when the source declares no operations.
func Assemble(model *wsdl.Model, proj *projector.Projection, title, version string) *openapi.Document {
	if title == "" {
		title = model.Service
	}
	if title == "" {
		title = DefaultTitle
	}
	if version == "" {
		version = DefaultVersion
	}
	description := model.Doc
	if description == "" {
		description = DefaultDescription
	}

	doc := &openapi.Document{
		OpenAPI: openapi.Version,
		Info: &openapi.Info{
			Title:       title,
			Description: description,
			Contact:     &openapi.Contact{Name: DefaultContactName},
			Version:     version,
		},
		Paths:   proj.Paths,
		Servers: proj.Servers,
		Tags:    proj.Tags,
	}
	if doc.Paths == nil {
		doc.Paths = make(openapi.Paths)
	}
	if len(proj.Schemas) > 0 {
		doc.Components = &openapi.Components{Schemas: proj.Schemas}
	}
	return doc
}
