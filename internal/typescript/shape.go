package typescript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kolah/frontgen/internal/codewriter"
	"github.com/kolah/frontgen/internal/model"
)

// ShapeRenderer turns schemas into TypeScript type expressions. Component
// schemas are referenced by name and declared once in the shared declarations
// writer the first time they are used.
type ShapeRenderer struct {
	spec  *model.Spec
	decls *codewriter.Writer
	// declared maps a component reference to the name it was declared under.
	declared map[string]string
	taken    map[string]bool
}

func NewShapeRenderer(spec *model.Spec, decls *codewriter.Writer) *ShapeRenderer {
	return &ShapeRenderer{
		spec:     spec,
		decls:    decls,
		declared: make(map[string]string),
		taken:    make(map[string]bool),
	}
}

// Reserve claims type names the caller declares itself. A component whose
// name is taken is declared with a numeric suffix instead.
func (r *ShapeRenderer) Reserve(names ...string) {
	for _, name := range names {
		r.taken[name] = true
	}
}

// Type renders s as an inline type expression.
func (r *ShapeRenderer) Type(s *model.Schema) string {
	if s == nil {
		return "unknown"
	}
	t := r.baseType(s)
	if (s.Nullable || hasNilEnum(s)) && t != "null" && t != "unknown" {
		t += " | null"
	}
	return t
}

func (r *ShapeRenderer) baseType(s *model.Schema) string {
	if s.Extensions != nil && s.Extensions.TSType != "" {
		return s.Extensions.TSType
	}
	if s.Ref != "" {
		return r.reference(s.Ref)
	}
	if len(s.Enum) > 0 {
		return enumType(s.Enum)
	}
	if len(s.AllOf) > 0 {
		return r.join(s.AllOf, " & ")
	}
	if len(s.OneOf) > 0 {
		return r.join(s.OneOf, " | ")
	}
	if len(s.AnyOf) > 0 {
		return r.join(s.AnyOf, " | ")
	}

	switch s.Type {
	case model.TypeString:
		if s.Format == "binary" {
			return "Blob"
		}
		return "string"
	case model.TypeInteger, model.TypeNumber:
		return "number"
	case model.TypeBoolean:
		return "boolean"
	case model.TypeNull:
		return "null"
	case model.TypeArray:
		return "Array<" + r.Type(s.Items) + ">"
	case model.TypeObject:
		return r.objectType(s)
	}

	if len(s.Properties) > 0 || s.AdditionalProperties != nil {
		return r.objectType(s)
	}
	return "unknown"
}

func (r *ShapeRenderer) objectType(s *model.Schema) string {
	var record string
	if s.AdditionalProperties != nil {
		record = "Record<string, " + r.Type(s.AdditionalProperties) + ">"
	}
	if len(s.Properties) == 0 {
		if record != "" {
			return record
		}
		return "Record<string, unknown>"
	}

	members := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		members = append(members, r.property(p.Name, p.Schema, s.IsRequired(p.Name)))
	}
	inline := "{ " + strings.Join(members, "; ") + " }"
	if record != "" {
		return inline + " & " + record
	}
	return inline
}

func (r *ShapeRenderer) property(name string, s *model.Schema, required bool) string {
	optional := "?"
	if required {
		optional = ""
	}
	return codewriter.QuoteString(name, '\'') + optional + ": " + r.Type(s)
}

func (r *ShapeRenderer) join(schemas []*model.Schema, sep string) string {
	seen := make(map[string]bool)
	var parts []string
	for _, s := range schemas {
		t := r.Type(s)
		if strings.Contains(t, " ") && sep == " & " && !strings.HasPrefix(t, "{") {
			t = "(" + t + ")"
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		parts = append(parts, t)
	}
	return strings.Join(parts, sep)
}

func (r *ShapeRenderer) reference(ref string) string {
	if typeName, ok := r.declared[ref]; ok {
		return typeName
	}

	base := TypeName(ref[strings.LastIndex(ref, "/")+1:])
	typeName := base
	for i := 2; r.taken[typeName]; i++ {
		typeName = base + strconv.Itoa(i)
	}
	r.taken[typeName] = true
	r.declared[ref] = typeName

	r.declare(typeName, r.spec.SchemaByRef(ref))
	return typeName
}

// declare renders into a private writer first: rendering the body may declare
// further components, which must not land inside this declaration.
func (r *ShapeRenderer) declare(typeName string, s *model.Schema) {
	w := codewriter.New(codewriter.Options{IndentSize: 2, SingleQuote: true})

	if s != nil {
		WriteDoc(w, s.Description, DeprecatedTag(s.Deprecated))
	}

	if isPlainObject(s) {
		w.Write("export type " + typeName + " =").Block(func() {
			for _, p := range s.Properties {
				w.WriteLine(r.property(p.Name, p.Schema, s.IsRequired(p.Name)) + ";")
			}
			if s.AdditionalProperties != nil {
				w.WriteLine("[key: string]: unknown;")
			}
		})
	} else {
		w.WriteLine("export type " + typeName + " = " + r.Type(s))
	}

	r.decls.BlankLineIfLastNot()
	r.decls.Write(w.String())
}

// WriteRequest writes the request shape of op: its path, query and header
// parameters followed by the properties of its JSON body. Parameter and
// property descriptions become JSDoc comments on the members.
func (r *ShapeRenderer) WriteRequest(w *codewriter.Writer, name string, op model.Operation) {
	type member struct {
		line       string
		doc        string
		deprecated bool
	}
	var members []member
	added := make(map[string]bool)

	for _, p := range op.Parameters {
		if p.In == model.LocationCookie || added[p.Name] {
			continue
		}
		added[p.Name] = true
		required := p.Required || p.In == model.LocationPath
		members = append(members, member{
			line:       r.property(p.Name, p.Schema, required) + ";",
			doc:        p.Description,
			deprecated: p.Deprecated,
		})
	}

	if op.RequestBody != nil && len(op.RequestBody.Content) > 0 {
		open := true
		if body, ok := op.RequestBody.JSON(); ok {
			var props []model.Property
			var container *model.Schema
			props, container, open = r.bodyProperties(body.Schema)
			for _, p := range props {
				if added[p.Name] {
					continue
				}
				added[p.Name] = true
				m := member{line: r.property(p.Name, p.Schema, container.IsRequired(p.Name)) + ";"}
				if p.Schema != nil && p.Schema.Ref == "" {
					m.doc, m.deprecated = p.Schema.Description, p.Schema.Deprecated
				}
				members = append(members, m)
			}
		}
		if open {
			members = append(members, member{line: "[key: string]: unknown;"})
		}
	}

	if len(members) == 0 {
		w.WriteLine("export type " + name + " = {}")
		return
	}
	w.Write("export type " + name + " =").Block(func() {
		for _, m := range members {
			WriteDoc(w, m.doc, DeprecatedTag(m.deprecated))
			w.WriteLine(m.line)
		}
	})
}

// bodyProperties flattens an object body, following component references and
// allOf members. open is set when the body admits fields beyond the listed
// properties or is not an object at all.
func (r *ShapeRenderer) bodyProperties(s *model.Schema) (props []model.Property, container *model.Schema, open bool) {
	container = &model.Schema{}
	visited := make(map[string]bool)

	var walk func(s *model.Schema) bool
	walk = func(s *model.Schema) bool {
		if s == nil {
			return false
		}
		if s.Ref != "" {
			if visited[s.Ref] {
				return true
			}
			visited[s.Ref] = true
			return walk(r.spec.SchemaByRef(s.Ref))
		}
		if len(s.AllOf) > 0 {
			for _, member := range s.AllOf {
				if !walk(member) {
					return false
				}
			}
			return true
		}
		if s.Type != model.TypeObject && len(s.Properties) == 0 && s.AdditionalProperties == nil {
			return false
		}
		props = append(props, s.Properties...)
		container.Required = append(container.Required, s.Required...)
		if s.AdditionalProperties != nil {
			open = true
		}
		return true
	}

	if !walk(s) {
		return nil, container, true
	}
	return props, container, open
}

func isPlainObject(s *model.Schema) bool {
	if s == nil || len(s.Properties) == 0 {
		return false
	}
	if s.Extensions != nil && s.Extensions.TSType != "" {
		return false
	}
	if s.Nullable || len(s.Enum) > 0 || len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0 {
		return false
	}
	return s.Type == model.TypeObject || s.Type == ""
}

func enumType(values []any) string {
	seen := make(map[string]bool)
	var parts []string
	for _, v := range values {
		var lit string
		switch v := v.(type) {
		case nil:
			continue
		case string:
			lit = codewriter.QuoteString(v, '\'')
		case bool, int, int64, uint64, float64:
			lit = fmt.Sprint(v)
		default:
			lit = "unknown"
		}
		if seen[lit] {
			continue
		}
		seen[lit] = true
		parts = append(parts, lit)
	}
	if len(parts) == 0 {
		return "null"
	}
	return strings.Join(parts, " | ")
}

func hasNilEnum(s *model.Schema) bool {
	for _, v := range s.Enum {
		if v == nil {
			return true
		}
	}
	return false
}
