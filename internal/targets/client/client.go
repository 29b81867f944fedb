package client

import (
	"errors"
	"strings"

	"github.com/kolah/frontgen/internal/codewriter"
	"github.com/kolah/frontgen/internal/frontend"
	"github.com/kolah/frontgen/internal/model"
)

const header = "// This client was generated by frontgen from an OpenAPI specification. Do not edit."

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "client"
}

type Options struct {
	Name         string
	FullResponse bool
	Dialect      frontend.Dialect
	// Types reports whether the types module is written next to the client.
	// JSDoc type annotations refer to it and are left out without it.
	Types bool
}

// operationData is everything the emitter needs for one operation, computed
// once up front.
type operationData struct {
	model.Operation
	Names        frontend.Names
	Routing      frontend.Routing
	FullResponse bool
}

func (o operationData) hasBody() bool {
	return o.Method != model.MethodGet
}

// Generate renders the implementation module: one private fetch function and
// one public wrapper per operation, and a default-exported factory.
func (t *Target) Generate(spec *model.Spec, ops []model.Operation, opts Options) (string, error) {
	if opts.Dialect == nil {
		return "", errors.New("client: dialect is required")
	}

	e := &emitter{
		w:      codewriter.New(codewriter.Options{IndentSize: 2, SingleQuote: true}),
		d:      opts.Dialect,
		name:   opts.Name,
		client: frontend.ClientName(opts.Name),
		types:  opts.Types,
	}

	operations := make([]operationData, 0, len(ops))
	for _, op := range ops {
		operations = append(operations, operationData{
			Operation:    op,
			Names:        frontend.NamesFor(op.ID),
			Routing:      frontend.Route(op),
			FullResponse: frontend.Classify(op, opts.FullResponse),
		})
	}

	e.writePreamble()
	for _, op := range operations {
		e.w.BlankLine()
		e.writeOperation(op)
		e.w.BlankLine()
		e.writeWrapper(op)
	}
	e.w.BlankLine()
	e.writeFactory(operations)

	return e.w.String(), nil
}

type emitter struct {
	w      *codewriter.Writer
	d      frontend.Dialect
	name   string
	client string
	types  bool
}

func (e *emitter) writePreamble() {
	w, d := e.w, e.d

	w.WriteLine(header)
	w.BlankLine()
	for _, line := range d.Imports(e.name, e.client) {
		w.WriteLine(line)
	}
	w.BlankLineIfLastNot()

	w.WriteLine("// The base URL for the API. This can be overridden by calling `setBaseUrl`.")
	w.WriteLine("let baseUrl = ''")
	w.BlankLine()

	w.Write("function sanitizeUrl (" + d.Param("url", "string") + ")" + d.Returns("string")).Block(func() {
		w.WriteLine("return url.endsWith('/') ? url.slice(0, -1) : url")
	})
	w.BlankLine()

	e.writeDocType("setBaseUrl")
	w.WriteLine("export const setBaseUrl = (" + d.Param("newUrl", "string") + ")" + d.Returns("void") + " => { baseUrl = sanitizeUrl(newUrl) }")
	w.BlankLine()

	w.Write("function headersToJSON (" + d.Param("headers", "Headers") + ")" + d.Returns("Record<string, string>")).Block(func() {
		w.WriteLine("const output" + d.Annotate("Record<string, string>") + " = {}")
		w.Write("headers.forEach((value, key) =>").InlineBlock(func() {
			w.WriteLine("output[key] = value")
		})
		w.Write(")")
		w.WriteLine("return output")
	})
}

func (e *emitter) writeOperation(op operationData) {
	w, d := e.w, e.d
	request := "Types." + op.Names.Request

	signature := "const " + op.Names.Private + " = async (" +
		d.Param("url", "string") + ", " + d.Param("request", request) + ")" +
		d.Returns("Promise<Types."+op.Names.Responses+">") + " =>"

	w.Write(signature).Block(func() {
		search := ""
		if len(op.Routing.Query) > 0 {
			e.writeQuery(op, request)
			search = "${search}"
		}
		if op.hasBody() || len(op.Routing.Header) > 0 {
			e.writeHeaders(op)
		}
		if op.hasBody() {
			e.writeBody(op)
		}

		url := "`${url}" + op.Routing.PathTemplate(field) + search + "`"
		switch {
		case op.hasBody():
			w.Write("const response = await fetch(" + url + ",").InlineBlock(func() {
				w.WriteLine("method: " + quote(string(op.Method)) + ",")
				w.WriteLine("body: JSON.stringify(body),")
				w.WriteLine("headers")
			})
			w.Write(")")
			w.NewLine()
		case len(op.Routing.Header) > 0:
			w.WriteLine("const response = await fetch(" + url + ", { headers })")
		default:
			w.WriteLine("const response = await fetch(" + url + ")")
		}
		w.BlankLine()

		if op.FullResponse {
			e.writeFullResponse(op)
		} else {
			e.writeDecodedBody(op)
		}
	})
}

// writeQuery copies every present query field into the search string. Zero
// and false are present; only undefined and null are skipped.
func (e *emitter) writeQuery(op operationData, request string) {
	w, d := e.w, e.d

	w.WriteLine("const queryParameters" + d.Annotate("(keyof "+request+")[]") + " = [" + quoteList(op.Routing.Query) + "]")
	w.WriteLine("const searchParams = new URLSearchParams()")
	w.Write("queryParameters.forEach((qp) =>").InlineBlock(func() {
		w.WriteLine("const value = request[qp]")
		w.Write("if (value !== undefined && value !== null)").Block(func() {
			w.WriteLine("searchParams.append(String(qp), String(value))")
		})
	})
	w.Write(")")
	w.WriteLine("const queryString = searchParams.toString()")
	w.WriteLine("const search = queryString === '' ? '' : `?${queryString}`")
	w.BlankLine()
}

func (e *emitter) writeHeaders(op operationData) {
	w, d := e.w, e.d

	declaration := "const headers" + d.Annotate("Record<string, string>") + " ="
	if op.hasBody() {
		w.Write(declaration).Block(func() {
			w.WriteLine("'Content-Type': 'application/json; charset=utf-8'")
		})
	} else {
		w.WriteLine(declaration + " {}")
	}

	for _, name := range op.Routing.Header {
		value := field(name)
		w.Write("if (" + value + " !== undefined && " + value + " !== null)").Block(func() {
			w.WriteLine("headers[" + quote(name) + "] = String(" + value + ")")
		})
	}
	w.BlankLine()
}

// writeBody projects the request onto the fields that are not sent as query
// or header parameters. The caller's object is left untouched.
func (e *emitter) writeBody(op operationData) {
	w, d := e.w, e.d

	consumed := op.Routing.Consumed()
	if len(consumed) == 0 {
		w.WriteLine("const body = request")
		w.BlankLine()
		return
	}
	w.WriteLine("const consumed" + d.Annotate("string[]") + " = [" + quoteList(consumed) + "]")
	w.WriteLine("const body = Object.fromEntries(Object.entries(request).filter(([key]) => !consumed.includes(key)))")
	w.BlankLine()
}

// writeFullResponse returns an envelope for every outcome. Declared statuses
// are matched first, then a JSON content type, then anything as text.
func (e *emitter) writeFullResponse(op operationData) {
	w := e.w
	all := frontend.StatusUnion(frontend.AllCodes(op.Responses))

	for _, group := range frontend.GroupByDecodeMethod(op.Responses) {
		list := string(group.Method) + "Responses"
		w.WriteLine("const " + list + " = [" + strings.Join(group.Codes, ", ") + "]")
		w.Write("if (" + list + ".includes(response.status))").Block(func() {
			e.writeEnvelope(frontend.StatusUnion(group.Codes), group.Method)
		})
		w.BlankLine()
	}

	w.Write("if ((response.headers.get('content-type') ?? '').startsWith('application/json'))").Block(func() {
		e.writeEnvelope(all, frontend.DecodeJSON)
	})
	w.BlankLine()
	e.writeEnvelope(all, frontend.DecodeText)
}

func (e *emitter) writeEnvelope(status string, method frontend.DecodeMethod) {
	w, d := e.w, e.d
	w.Write("return").Block(func() {
		w.WriteLine("statusCode: " + d.Cast("response.status", status) + ",")
		w.WriteLine("headers: headersToJSON(response.headers),")
		w.WriteLine("body: " + d.Cast("await response."+string(method)+"()", "any"))
	})
}

func (e *emitter) writeDecodedBody(op operationData) {
	w := e.w
	w.Write("if (!response.ok)").Block(func() {
		w.WriteLine("throw new Error(await response.text())")
	})
	w.BlankLine()
	if frontend.IsPlainJSON200(op.Responses) {
		w.WriteLine("return await response.json()")
	} else {
		w.WriteLine("return await response.text()")
	}
}

func (e *emitter) writeWrapper(op operationData) {
	w, d := e.w, e.d

	e.writeDocType(op.Names.ID)
	signature := "export const " + op.Names.ID + d.Annotate(e.client+"['"+op.Names.ID+"']") +
		" = async (" + d.Param("request", "Types."+op.Names.Request) + ")" +
		d.Returns("Promise<Types."+op.Names.Responses+">") + " =>"
	w.Write(signature).Block(func() {
		w.WriteLine("return await " + op.Names.Private + "(baseUrl, request)")
	})
}

func (e *emitter) writeFactory(ops []operationData) {
	w, d := e.w, e.d

	w.Write("export default function build (" + d.Param("url", "string") + ")").Block(func() {
		w.WriteLine("const base = sanitizeUrl(url)")
		w.Write("return").Block(func() {
			for i, op := range ops {
				sep := ","
				if i == len(ops)-1 {
					sep = ""
				}
				w.WriteLine(op.Names.ID + ": (" + d.Param("request", "Types."+op.Names.Request) + ") => " +
					op.Names.Private + "(base, request)" + sep)
			}
		})
	})
}

func (e *emitter) writeDocType(member string) {
	if !e.types {
		return
	}
	doc := e.d.DocType(e.name, e.client+"['"+member+"']")
	e.w.ConditionalWriteLine(doc != "", doc)
}

func field(name string) string {
	return "request[" + quote(name) + "]"
}

func quote(s string) string {
	return codewriter.QuoteString(s, '\'')
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quote(n)
	}
	return strings.Join(quoted, ", ")
}
