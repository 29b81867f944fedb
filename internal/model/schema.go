package model

type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string
	Nullable    bool
	Deprecated  bool

	// Object properties
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// Enum values, decoded to their YAML scalar types
	Enum []any

	// Composition
	AllOf []*Schema
	OneOf []*Schema
	AnyOf []*Schema

	// Reference
	Ref string

	// Additional properties for maps
	AdditionalProperties *Schema

	// x-ts-* extensions
	Extensions *SchemaExtensions
}

// SchemaExtensions holds x-ts-* extension values for customizing code generation.
type SchemaExtensions struct {
	// TSType overrides the generated TypeScript type (e.g., "Date")
	TSType string
}

// IsRequired reports whether the named property is listed as required.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

type Property struct {
	Name   string
	Schema *Schema
}
