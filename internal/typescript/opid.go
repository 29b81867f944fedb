package typescript

import (
	"strconv"
	"strings"

	"github.com/kolah/frontgen/internal/model"
)

// OperationIDs hands out operation identifiers that are unique for the
// lifetime of the generator.
type OperationIDs struct {
	used map[string]bool
}

func NewOperationIDs() *OperationIDs {
	return &OperationIDs{used: make(map[string]bool)}
}

// Next returns the identifier for op. An explicit operationId is camel-cased;
// otherwise the id is derived from the method and the path, with {param}
// segments rendered as By<Param>. Repeats get a numeric suffix starting at 2.
func (g *OperationIDs) Next(path string, method model.Method, op model.Operation) string {
	base := CamelCase(op.ID)
	if base == "" {
		base = fromPath(path, method)
	}
	if unicodeDigitStart(base) {
		base = "_" + base
	}
	base = EscapeKeyword(base)

	id := base
	for n := 2; g.used[id]; n++ {
		id = base + strconv.Itoa(n)
	}
	g.used[id] = true
	return id
}

func fromPath(path string, method model.Method) string {
	var b strings.Builder
	b.WriteString(method.Lower())
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			b.WriteString("By")
			b.WriteString(PascalCase(strings.Trim(segment, "{}")))
			continue
		}
		b.WriteString(PascalCase(segment))
	}
	return b.String()
}

func unicodeDigitStart(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
