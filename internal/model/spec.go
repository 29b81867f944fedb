package model

import "strings"

type Spec struct {
	Info       Info
	Paths      []Path
	Operations []Operation
	Schemas    []Schema
}

// SchemaByRef returns a schema by its $ref path (e.g., "#/components/schemas/User").
// Returns nil if the schema is not found.
func (s *Spec) SchemaByRef(ref string) *Schema {
	parts := strings.Split(ref, "/")
	if len(parts) == 0 {
		return nil
	}
	name := parts[len(parts)-1]
	for i := range s.Schemas {
		if s.Schemas[i].Name == name {
			return &s.Schemas[i]
		}
	}
	return nil
}

type Info struct {
	Title   string
	Version string
}

// Path is a path item in document order. Parameters are the ones declared on
// the path item itself and apply to every operation below it.
type Path struct {
	Path       string
	Parameters []Parameter
	Operations []Operation
}
