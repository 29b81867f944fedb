package types

import (
	"strings"
	"testing"

	"github.com/kolah/frontgen/internal/model"
	"github.com/stretchr/testify/require"
)

func movieSpec() *model.Spec {
	return &model.Spec{
		Schemas: []model.Schema{
			{
				Name:     "Movie",
				Type:     model.TypeObject,
				Required: []string{"title"},
				Properties: []model.Property{
					{Name: "id", Schema: &model.Schema{Type: model.TypeInteger}},
					{Name: "title", Schema: &model.Schema{Type: model.TypeString}},
				},
			},
		},
	}
}

func movieRef() *model.Schema {
	return &model.Schema{Ref: "#/components/schemas/Movie"}
}

func operations() []model.Operation {
	return []model.Operation{
		{
			ID:      "getMovies",
			Method:  model.MethodGet,
			Path:    "/movies",
			Summary: "List movies",
			Parameters: []model.Parameter{
				{Name: "limit", In: model.LocationQuery, Schema: &model.Schema{Type: model.TypeInteger}},
			},
			Responses: []model.Response{
				{StatusCode: "200", Content: []model.MediaTypeContent{{
					MediaType: "application/json",
					Schema:    &model.Schema{Type: model.TypeArray, Items: movieRef()},
				}}},
			},
		},
		{
			ID:         "createMovie",
			Method:     model.MethodPost,
			Path:       "/movies",
			Deprecated: true,
			RequestBody: &model.RequestBody{Content: []model.MediaTypeContent{{
				MediaType: "application/json",
				Schema:    movieRef(),
			}}},
			Responses: []model.Response{
				{StatusCode: "201", Content: []model.MediaTypeContent{{MediaType: "application/json", Schema: movieRef()}}},
				{StatusCode: "204"},
				{StatusCode: "415", Content: []model.MediaTypeContent{{MediaType: "text/plain"}}},
				{StatusCode: "default", Content: []model.MediaTypeContent{{MediaType: "application/octet-stream"}}},
			},
		},
		{
			ID:     "ping",
			Method: model.MethodGet,
			Path:   "/ping",
			Responses: []model.Response{
				{StatusCode: "200", Content: []model.MediaTypeContent{{MediaType: "text/plain"}}},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	out, err := New().Generate(movieSpec(), operations(), Options{Name: "movies"})
	require.NoError(t, err)

	expected := header + "\n" +
		"\n" +
		"export interface FullResponse<T, U extends number> {\n" +
		"  'statusCode': U;\n" +
		"  'headers': object;\n" +
		"  'body': T;\n" +
		"}\n" +
		"\n" +
		"export type Movie = {\n" +
		"  'id'?: number;\n" +
		"  'title': string;\n" +
		"}\n" +
		"\n" +
		"export type GetMoviesRequest = {\n" +
		"  'limit'?: number;\n" +
		"}\n" +
		"export type GetMoviesResponseOK = Array<Movie>\n" +
		"export type GetMoviesResponses = GetMoviesResponseOK\n" +
		"\n" +
		"export type CreateMovieRequest = {\n" +
		"  'id'?: number;\n" +
		"  'title': string;\n" +
		"}\n" +
		"export type CreateMovieResponseCreated = Movie\n" +
		"export type CreateMovieResponseNoContent = undefined\n" +
		"export type CreateMovieResponseUnsupportedMediaType = string\n" +
		"export type CreateMovieResponseDefault = Blob\n" +
		"export type CreateMovieResponses =\n" +
		"  | FullResponse<CreateMovieResponseCreated, 201>\n" +
		"  | FullResponse<CreateMovieResponseNoContent, 204>\n" +
		"  | FullResponse<CreateMovieResponseUnsupportedMediaType, 415>\n" +
		"  | FullResponse<CreateMovieResponseDefault, number>\n" +
		"\n" +
		"export type PingRequest = {}\n" +
		"export type PingResponseOK = string\n" +
		"export type PingResponses = string\n" +
		"\n" +
		"export interface Movies {\n" +
		"  setBaseUrl(newUrl: string): void;\n" +
		"  /** List movies */\n" +
		"  getMovies(req: GetMoviesRequest): Promise<GetMoviesResponses>;\n" +
		"  /** @deprecated */\n" +
		"  createMovie(req: CreateMovieRequest): Promise<CreateMovieResponses>;\n" +
		"  ping(req: PingRequest): Promise<PingResponses>;\n" +
		"}\n" +
		"\n" +
		"export type MoviesClient = Omit<Movies, 'setBaseUrl'>\n" +
		"export default function build(url: string): MoviesClient\n"

	require.Equal(t, expected, out)
}

func TestGenerateGlobalFullResponse(t *testing.T) {
	out, err := New().Generate(movieSpec(), operations(), Options{Name: "movies", FullResponse: true})
	require.NoError(t, err)

	require.Contains(t, out, "export type GetMoviesResponses =\n  | FullResponse<GetMoviesResponseOK, 200>\n")
	require.Contains(t, out, "export type PingResponses =\n  | FullResponse<PingResponseOK, 200>\n")
}

func TestGenerateNoResponses(t *testing.T) {
	ops := []model.Operation{{ID: "fire", Method: model.MethodPost, Path: "/fire"}}

	out, err := New().Generate(&model.Spec{}, ops, Options{Name: "api"})
	require.NoError(t, err)

	require.Contains(t, out, "export type FireResponses =\n  | FullResponse<unknown, number>\n")
	require.Contains(t, out, "export interface Api {\n")
	require.False(t, strings.Contains(out, "export type Movie"))
}

func TestDocEscapesCommentEnd(t *testing.T) {
	ops := []model.Operation{{ID: "odd", Method: model.MethodGet, Path: "/odd", Summary: "ends */ early", Deprecated: true}}

	out, err := New().Generate(&model.Spec{}, ops, Options{Name: "api"})
	require.NoError(t, err)
	require.Contains(t, out, "  /**\n   * ends *\\/ early\n   * @deprecated\n   */\n  odd(req: OddRequest)")
}

func TestComponentsDoNotTakeGeneratedNames(t *testing.T) {
	spec := &model.Spec{Schemas: []model.Schema{
		{Name: "FullResponse", Type: model.TypeString},
		{Name: "PingRequest", Type: model.TypeInteger},
		{Name: "Api", Type: model.TypeBoolean},
	}}
	component := func(name string) *model.Schema {
		return &model.Schema{Ref: "#/components/schemas/" + name}
	}
	ops := []model.Operation{{
		ID:     "ping",
		Method: model.MethodGet,
		Path:   "/ping",
		Parameters: []model.Parameter{
			{Name: "seq", In: model.LocationQuery, Schema: component("PingRequest")},
			{Name: "flag", In: model.LocationQuery, Schema: component("Api")},
		},
		Responses: []model.Response{{StatusCode: "200", Content: []model.MediaTypeContent{{
			MediaType: "application/json",
			Schema:    component("FullResponse"),
		}}}},
	}}

	out, err := New().Generate(spec, ops, Options{Name: "api"})
	require.NoError(t, err)

	require.Contains(t, out, "export type FullResponse2 = string\n")
	require.Contains(t, out, "export type PingRequest2 = number\n")
	require.Contains(t, out, "export type Api2 = boolean\n")
	require.Contains(t, out, "  'seq'?: PingRequest2;\n")
	require.Contains(t, out, "  'flag'?: Api2;\n")
	require.Contains(t, out, "export type PingResponseOK = FullResponse2\n")
	require.Equal(t, 1, strings.Count(out, "export type PingRequest ="))
	require.Equal(t, 1, strings.Count(out, "FullResponse<T, U extends number>"))
	require.Contains(t, out, "export interface Api {\n")
}

func TestClientNameStartingWithDigit(t *testing.T) {
	ops := []model.Operation{{ID: "verify", Method: model.MethodPost, Path: "/verify"}}

	out, err := New().Generate(&model.Spec{}, ops, Options{Name: "2fa"})
	require.NoError(t, err)

	require.Contains(t, out, "export interface T2fa {\n")
	require.Contains(t, out, "export type T2faClient = Omit<T2fa, 'setBaseUrl'>\n")
	require.Contains(t, out, "export default function build(url: string): T2faClient\n")
}
