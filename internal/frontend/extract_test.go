package frontend

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/kolah/frontgen/internal/model"
	"github.com/stretchr/testify/require"
)

func testSpec() *model.Spec {
	return &model.Spec{
		Paths: []model.Path{
			{
				Path: "/movies",
				Operations: []model.Operation{
					{Method: model.MethodPost, Path: "/movies", ID: "createMovie", Tags: []string{"movies"}},
					{Method: model.MethodGet, Path: "/movies", Tags: []string{"movies", "public"}},
					{Method: model.MethodOptions, Path: "/movies"},
				},
			},
			{
				Path: "/movies/{id}",
				Parameters: []model.Parameter{
					{Name: "id", In: model.LocationPath, Required: true, Description: "path level"},
					{Name: "x-trace", In: model.LocationHeader},
				},
				Operations: []model.Operation{
					{
						Method: model.MethodDelete,
						Path:   "/movies/{id}",
						Parameters: []model.Parameter{
							{Name: "id", In: model.LocationPath, Required: true, Description: "operation level"},
							{Name: "force", In: model.LocationQuery},
						},
					},
					{Method: model.MethodGet, Path: "/movies/{id}", ID: "getMovies"},
				},
			},
			{
				Path: "/health",
				Operations: []model.Operation{
					{Method: model.MethodGet, Path: "/health", ID: "health", Tags: []string{"internal"}},
				},
			},
		},
	}
}

func TestExtractOrderAndIDs(t *testing.T) {
	ops := Extract(testSpec(), ExtractOptions{})

	var ids []string
	for _, op := range ops {
		ids = append(ids, op.ID)
	}
	require.Equal(t, []string{"createMovie", "getMovies", "deleteMoviesById", "getMovies2", "health"}, ids)
	require.Equal(t, model.MethodPost, ops[0].Method)
	require.Equal(t, "/movies/{id}", ops[2].Path)
}

func TestExtractMergesPathParameters(t *testing.T) {
	ops := Extract(testSpec(), ExtractOptions{})

	del := ops[2]
	require.Len(t, del.Parameters, 3)
	require.Equal(t, "id", del.Parameters[0].Name)
	require.Equal(t, "operation level", del.Parameters[0].Description)
	require.Equal(t, "x-trace", del.Parameters[1].Name)
	require.Equal(t, "force", del.Parameters[2].Name)

	get := ops[3]
	require.Len(t, get.Parameters, 2)
	require.Equal(t, "path level", get.Parameters[0].Description)
}

func TestExtractDoesNotModifySpec(t *testing.T) {
	spec := testSpec()
	Extract(spec, ExtractOptions{})

	require.Empty(t, spec.Paths[0].Operations[1].ID)
	require.Len(t, spec.Paths[1].Operations[0].Parameters, 2)
	require.Empty(t, spec.Paths[1].Operations[1].Parameters)
}

func TestExtractTagFilters(t *testing.T) {
	tests := []struct {
		name     string
		opts     ExtractOptions
		expected []string
	}{
		{"include", ExtractOptions{IncludeTags: []string{"movies"}}, []string{"createMovie", "getMovies"}},
		{"exclude", ExtractOptions{ExcludeTags: []string{"public", "internal"}}, []string{"createMovie", "deleteMoviesById", "getMovies2"}},
		{"exclude wins", ExtractOptions{IncludeTags: []string{"movies"}, ExcludeTags: []string{"public"}}, []string{"createMovie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, op := range Extract(testSpec(), tt.opts) {
				ids = append(ids, op.ID)
			}
			require.Equal(t, tt.expected, ids)
		})
	}
}

func TestExtractLogsSkippedMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Extract(testSpec(), ExtractOptions{Logger: logger})

	require.Contains(t, buf.String(), "skipping unsupported method")
	require.Contains(t, buf.String(), "method=OPTIONS")
}
