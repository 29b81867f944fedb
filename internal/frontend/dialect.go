package frontend

import "fmt"

// Dialect supplies everything that differs between the typed and untyped
// output. The emitters write the same statements for both and ask the dialect
// for annotations, casts and imports.
type Dialect interface {
	Language() string
	Extension() string
	// EmitsTypes reports whether the types module is generated unless the
	// caller says otherwise.
	EmitsTypes() bool
	// Imports returns the import lines for the types module of the named client.
	Imports(name, client string) []string
	// Param renders a function parameter with its type.
	Param(name, typ string) string
	// Returns renders the return type suffix of a function signature.
	Returns(typ string) string
	// Annotate renders the declared type suffix of a binding.
	Annotate(typ string) string
	Cast(expr, typ string) string
	// DocType returns a JSDoc line typing the next export, or "" when the
	// dialect annotates inline.
	DocType(name, typ string) string
}

// DialectFor returns the dialect for a language setting.
func DialectFor(language string) (Dialect, error) {
	switch language {
	case "ts", "typescript":
		return typeScript{}, nil
	case "js", "javascript":
		return javaScript{}, nil
	default:
		return nil, fmt.Errorf("unsupported language %q (expected ts or js)", language)
	}
}

// TypesModule is the file name of the types module for an output name.
func TypesModule(name string) string {
	return name + "-types.d.ts"
}

type typeScript struct{}

func (typeScript) Language() string  { return "ts" }
func (typeScript) Extension() string { return "ts" }
func (typeScript) EmitsTypes() bool  { return true }

func (typeScript) Imports(name, client string) []string {
	return []string{
		fmt.Sprintf("import type { %s } from './%s-types'", client, name),
		fmt.Sprintf("import type * as Types from './%s-types'", name),
	}
}

func (typeScript) Param(name, typ string) string   { return name + ": " + typ }
func (typeScript) Returns(typ string) string       { return ": " + typ }
func (typeScript) Annotate(typ string) string      { return ": " + typ }
func (typeScript) Cast(expr, typ string) string    { return expr + " as " + typ }
func (typeScript) DocType(name, typ string) string { return "" }

type javaScript struct{}

func (javaScript) Language() string  { return "js" }
func (javaScript) Extension() string { return "js" }
func (javaScript) EmitsTypes() bool  { return false }

func (javaScript) Imports(name, client string) []string { return nil }

func (javaScript) Param(name, typ string) string { return name }
func (javaScript) Returns(typ string) string     { return "" }
func (javaScript) Annotate(typ string) string    { return "" }
func (javaScript) Cast(expr, typ string) string  { return expr }

func (javaScript) DocType(name, typ string) string {
	return fmt.Sprintf("/** @type {import('./%s').%s} */", TypesModule(name), typ)
}
