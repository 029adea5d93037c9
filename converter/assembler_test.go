package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/wsdltools/openapi"
	"github.com/erraggy/wsdltools/projector"
	"github.com/erraggy/wsdltools/wsdl"
)

func TestAssembleDefaults(t *testing.T) {
	model := &wsdl.Model{Service: "EmptyService"}
	doc := Assemble(model, &projector.Projection{}, "", "")

	// Required members are always present, even with nothing to project
	assert.Equal(t, openapi.Version, doc.OpenAPI)
	require.NotNil(t, doc.Info)
	require.NotNil(t, doc.Paths)
	assert.Empty(t, doc.Paths)

	assert.Equal(t, "EmptyService", doc.Info.Title)
	assert.Equal(t, DefaultVersion, doc.Info.Version)
	assert.Equal(t, DefaultDescription, doc.Info.Description)
	require.NotNil(t, doc.Info.Contact)
	assert.Equal(t, DefaultContactName, doc.Info.Contact.Name)
	assert.Nil(t, doc.Components)
}

func TestAssembleUnnamedService(t *testing.T) {
	doc := Assemble(&wsdl.Model{}, &projector.Projection{}, "", "")
	assert.Equal(t, DefaultTitle, doc.Info.Title)
}

func TestAssembleOverrides(t *testing.T) {
	model := &wsdl.Model{Service: "Svc", Doc: "Documented."}
	proj := &projector.Projection{
		Schemas: map[string]*openapi.Schema{"User": {Type: "object"}},
	}

	doc := Assemble(model, proj, "Custom API", "3.2.1")

	assert.Equal(t, "Custom API", doc.Info.Title)
	assert.Equal(t, "3.2.1", doc.Info.Version)
	assert.Equal(t, "Documented.", doc.Info.Description)
	require.NotNil(t, doc.Components)
	assert.Contains(t, doc.Components.Schemas, "User")
}
