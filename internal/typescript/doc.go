package typescript

import (
	"strings"

	"github.com/kolah/frontgen/internal/codewriter"
)

// WriteDoc writes a JSDoc comment holding the non-empty lines. Whitespace in
// each line is collapsed and comment terminators are escaped. Nothing is
// written when every line is empty.
func WriteDoc(w *codewriter.Writer, lines ...string) {
	var doc []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		doc = append(doc, strings.ReplaceAll(line, "*/", "*\\/"))
	}

	switch len(doc) {
	case 0:
		return
	case 1:
		w.WriteLine("/** " + doc[0] + " */")
		return
	}
	w.WriteLine("/**")
	for _, line := range doc {
		w.WriteLine(" * " + line)
	}
	w.WriteLine(" */")
}

// DeprecatedTag returns the JSDoc tag for deprecated members, or "".
func DeprecatedTag(deprecated bool) string {
	if deprecated {
		return "@deprecated"
	}
	return ""
}
