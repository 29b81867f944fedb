package types

import (
	"github.com/kolah/frontgen/internal/codewriter"
	"github.com/kolah/frontgen/internal/frontend"
	"github.com/kolah/frontgen/internal/model"
	"github.com/kolah/frontgen/internal/typescript"
)

const header = "// This file was generated by frontgen from an OpenAPI specification. Do not edit."

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "types"
}

type Options struct {
	// Name is the output name; the client interface is its PascalCase form.
	Name         string
	FullResponse bool
}

// Generate renders the types module for ops: request and response shapes per
// operation, the components they reference and the client interface.
func (t *Target) Generate(spec *model.Spec, ops []model.Operation, opts Options) (string, error) {
	client := frontend.ClientName(opts.Name)

	shared := newWriter()
	renderer := typescript.NewShapeRenderer(spec, shared)
	renderer.Reserve(generatedNames(client, ops)...)

	operations := newWriter()
	for _, op := range ops {
		writeOperation(operations, renderer, op, frontend.Classify(op, opts.FullResponse))
	}

	w := newWriter()
	w.WriteLine(header)
	w.BlankLine()

	w.Write("export interface FullResponse<T, U extends number>").Block(func() {
		w.WriteLine("'statusCode': U;")
		w.WriteLine("'headers': object;")
		w.WriteLine("'body': T;")
	})

	if shared.String() != "" {
		w.BlankLine()
		w.Write(shared.String())
	}
	if operations.String() != "" {
		w.BlankLine()
		w.Write(operations.String())
	}

	w.BlankLine()
	w.Write("export interface " + client).Block(func() {
		w.WriteLine("setBaseUrl(newUrl: string): void;")
		for _, op := range ops {
			names := frontend.NamesFor(op.ID)
			writeDoc(w, op)
			w.WriteLine(names.ID + "(req: " + names.Request + "): Promise<" + names.Responses + ">;")
		}
	})

	w.BlankLine()
	w.WriteLine("export type " + client + "Client = Omit<" + client + ", 'setBaseUrl'>")
	w.WriteLine("export default function build(url: string): " + client + "Client")

	return w.String(), nil
}

// generatedNames lists the type names the module declares besides the
// components, so a component cannot take one of them.
func generatedNames(client string, ops []model.Operation) []string {
	names := []string{"FullResponse", client, client + "Client"}
	for _, op := range ops {
		n := frontend.NamesFor(op.ID)
		names = append(names, n.Request, n.Responses)
		for _, r := range op.Responses {
			names = append(names, n.Response(r.StatusCode))
		}
	}
	return names
}

func writeOperation(w *codewriter.Writer, renderer *typescript.ShapeRenderer, op model.Operation, fullResponse bool) {
	names := frontend.NamesFor(op.ID)

	w.BlankLineIfLastNot()
	renderer.WriteRequest(w, names.Request, op)

	for _, r := range op.Responses {
		w.WriteLine("export type " + names.Response(r.StatusCode) + " = " + bodyType(renderer, r))
	}

	if fullResponse {
		var members []string
		for _, r := range op.Responses {
			status := "number"
			if frontend.IsNumericCode(r.StatusCode) {
				status = r.StatusCode
			}
			members = append(members, "FullResponse<"+names.Response(r.StatusCode)+", "+status+">")
		}
		if len(members) == 0 {
			members = []string{"FullResponse<unknown, number>"}
		}
		w.Write("export type " + names.Responses + " =").Indent(func() {
			for _, m := range members {
				w.WriteLine("| " + m)
			}
		})
		return
	}

	// Without the envelope the body is decoded as JSON only for a plain JSON
	// 200; everything else is read as text.
	responses := "string"
	if frontend.IsPlainJSON200(op.Responses) {
		responses = names.Response("200")
	}
	w.WriteLine("export type " + names.Responses + " = " + responses)
}

// bodyType is the type of the value the runtime reads for r.
func bodyType(renderer *typescript.ShapeRenderer, r model.Response) string {
	switch frontend.DecodeMethodOf(r) {
	case frontend.DecodeJSON:
		return renderer.Type(r.Schema())
	case frontend.DecodeBlob:
		return "Blob"
	default:
		if r.ContentType() == "" {
			return "undefined"
		}
		return "string"
	}
}

func writeDoc(w *codewriter.Writer, op model.Operation) {
	typescript.WriteDoc(w, op.Summary, op.Description, typescript.DeprecatedTag(op.Deprecated))
}

func newWriter() *codewriter.Writer {
	return codewriter.New(codewriter.Options{IndentSize: 2, SingleQuote: true})
}
