package openapi

// Version is the OpenAPI version string emitted on every generated document.
const Version = "3.0.0"

// Document represents an OpenAPI 3.0 document as produced by the projector.
// Reference: https://spec.openapis.org/oas/v3.0.0.html
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"` // Required: "3.0.0"
	Info       *Info       `yaml:"info" json:"info"`       // Required
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths" json:"paths"` // Required in 3.0
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
	Tags       []*Tag      `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Components holds reusable objects for different aspects of the document.
// Only schemas are populated by the projector; the remaining component kinds
// have no WSDL source construct.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// Info provides metadata about the API
type Info struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Contact     *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	Version     string   `yaml:"version" json:"version"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// Server represents a Server object
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}
