package frontend

import "github.com/kolah/frontgen/internal/typescript"

// Names are the generated identifiers of one operation. Both artifacts derive
// them from the operation ID through NamesFor, so they always agree.
type Names struct {
	ID        string
	Private   string
	Request   string
	Responses string
	base      string
}

func NamesFor(id string) Names {
	base := typescript.TypeName(typescript.PascalCase(id))
	return Names{
		ID:        id,
		Private:   "_" + id,
		Request:   base + "Request",
		Responses: base + "Responses",
		base:      base,
	}
}

// Response is the type name of a single declared response, e.g.
// GetMoviesResponseOK for "200".
func (n Names) Response(code string) string {
	return n.base + "Response" + typescript.StatusName(code)
}

// ClientName is the name of the aggregate client interface for an output
// name, e.g. "movies-api" -> "MoviesApi" and "2fa" -> "T2fa".
func ClientName(name string) string {
	return typescript.TypeName(typescript.PascalCase(name))
}
