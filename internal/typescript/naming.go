package typescript

import (
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CamelCase lower-cases the first word and capitalizes the rest:
// "get-movies" -> "getMovies", "GetHTTPStatus" -> "getHttpStatus".
func CamelCase(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for i, word := range words {
		if i == 0 {
			result.WriteString(strings.ToLower(word))
			continue
		}
		result.WriteString(capitalizeWord(word))
	}
	return result.String()
}

func PascalCase(s string) string {
	return Capitalize(CamelCase(s))
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// StatusName turns a response key into a type-name suffix: "200" -> "OK",
// "404" -> "NotFound", "default" -> "Default".
func StatusName(code string) string {
	if code == "default" {
		return "Default"
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	text := http.StatusText(n)
	if text == "" {
		return code
	}
	var b strings.Builder
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	}) {
		field = strings.ReplaceAll(field, "'", "")
		b.WriteString(Capitalize(field))
	}
	return b.String()
}

func splitWords(s string) []string {
	s = removeAccents(s)

	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rs[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				// "HTTPStatus": the S starts a new word
				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}

func capitalizeWord(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	for i := 1; i < len(r); i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true, "let": true, "static": true, "implements": true,
	"interface": true, "package": true, "private": true, "protected": true,
	"public": true, "await": true,
}

func EscapeKeyword(s string) string {
	if reservedWords[s] {
		return s + "_"
	}
	return s
}

// IsIdentifier reports whether s can be used as a JavaScript binding name
// as written.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && r < unicode.MaxASCII && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return !reservedWords[s]
}

// Identifier makes s usable as a binding name, keeping it unchanged when it
// already is one.
func Identifier(s string) string {
	if IsIdentifier(s) {
		return s
	}
	id := CamelCase(s)
	if id == "" {
		return "_"
	}
	if unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}
	return EscapeKeyword(id)
}

// TypeName makes s usable as an exported type name.
func TypeName(s string) string {
	if IsIdentifier(s) {
		return s
	}
	name := PascalCase(s)
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "T" + name
	}
	return name
}
