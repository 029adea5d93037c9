package openapi

// SchemaRefPrefix is the $ref prefix for schemas under components.
const SchemaRefPrefix = "#/components/schemas/"

// Schema represents the JSON Schema subset the projector emits.
// Only constructs with an XSD source are present; composition keywords,
// conditional schemas, and JSON Schema 2020-12 additions have no WSDL
// counterpart and are deliberately absent.
type Schema struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string           `yaml:"required,omitempty" json:"required,omitempty"`

	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`

	Default any `yaml:"default,omitempty" json:"default,omitempty"`
	Example any `yaml:"example,omitempty" json:"example,omitempty"`
}

// RefTo returns a schema that references the named component schema.
func RefTo(name string) *Schema {
	return &Schema{Ref: SchemaRefPrefix + name}
}
