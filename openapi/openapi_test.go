package openapi

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestRefTo(t *testing.T) {
	s := RefTo("GetUserResponse")
	assert.Equal(t, "#/components/schemas/GetUserResponse", s.Ref)
	assert.Empty(t, s.Type)
}

// TestDocumentYAMLShape verifies the three required top-level keys are
// always present in serialized output, and optional keys are omitted when
// empty.
func TestDocumentYAMLShape(t *testing.T) {
	doc := &Document{
		OpenAPI: Version,
		Info:    &Info{Title: "UserService", Version: "1.0.0"},
		Paths: Paths{
			"/GetUser": &PathItem{
				Post: &Operation{
					OperationID: "GetUser",
					Responses: Responses{
						"200": &Response{Description: "Successful response"},
					},
				},
			},
		},
	}

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(out, &raw))

	assert.Equal(t, "3.0.0", raw["openapi"])
	assert.Contains(t, raw, "info")
	assert.Contains(t, raw, "paths")
	assert.NotContains(t, raw, "components")
	assert.NotContains(t, raw, "servers")
}

// TestSchemaJSONOmitsEmpty verifies that unset schema fields do not leak
// into JSON output.
func TestSchemaJSONOmitsEmpty(t *testing.T) {
	s := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"id": {Type: "string"},
			"tags": {
				Type:  "array",
				Items: &Schema{Type: "string"},
			},
		},
		Required: []string{"id"},
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))

	assert.Equal(t, "object", raw["type"])
	assert.NotContains(t, raw, "$ref")
	assert.NotContains(t, raw, "format")
	assert.NotContains(t, raw, "enum")
	assert.NotContains(t, raw, "nullable")

	props := raw["properties"].(map[string]any)
	tags := props["tags"].(map[string]any)
	assert.Equal(t, "array", tags["type"])
}
