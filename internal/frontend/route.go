package frontend

import (
	"regexp"
	"slices"
	"strings"

	"github.com/kolah/frontgen/internal/model"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Routing is where each request field of an operation goes at call time.
// Path parameters are not listed: they are consumed by the URL template.
type Routing struct {
	Path   string
	Query  []string
	Header []string
}

func Route(op model.Operation) Routing {
	r := Routing{Path: op.Path}
	for _, p := range op.Parameters {
		switch p.In {
		case model.LocationQuery:
			if !slices.Contains(r.Query, p.Name) {
				r.Query = append(r.Query, p.Name)
			}
		case model.LocationHeader:
			if !slices.Contains(r.Header, p.Name) {
				r.Header = append(r.Header, p.Name)
			}
		}
	}
	return r
}

// Consumed lists the fields that must not be sent in the body.
func (r Routing) Consumed() []string {
	consumed := make([]string, 0, len(r.Query)+len(r.Header))
	consumed = append(consumed, r.Query...)
	for _, h := range r.Header {
		if !slices.Contains(consumed, h) {
			consumed = append(consumed, h)
		}
	}
	return consumed
}

// PathTemplate renders the path as the body of a template literal, replacing
// each {name} with ${expr(name)}. Literal text is escaped for use between
// backticks.
func (r Routing) PathTemplate(expr func(name string) string) string {
	var b strings.Builder
	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(r.Path, -1) {
		b.WriteString(escapeTemplateText(r.Path[last:m[0]]))
		b.WriteString("${")
		b.WriteString(expr(r.Path[m[2]:m[3]]))
		b.WriteString("}")
		last = m[1]
	}
	b.WriteString(escapeTemplateText(r.Path[last:]))
	return b.String()
}

func escapeTemplateText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "${", "\\${")
}

// Placeholders lists the {name} placeholders of a path template in order.
func Placeholders(path string) []string {
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(path, -1) {
		names = append(names, m[1])
	}
	return names
}

// Unbound lists placeholders of op's path that no path parameter declares.
func Unbound(op model.Operation) []string {
	var unbound []string
	for _, name := range Placeholders(op.Path) {
		declared := slices.ContainsFunc(op.Parameters, func(p model.Parameter) bool {
			return p.In == model.LocationPath && p.Name == name
		})
		if !declared {
			unbound = append(unbound, name)
		}
	}
	return unbound
}
