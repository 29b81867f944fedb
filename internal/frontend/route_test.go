package frontend

import (
	"testing"

	"github.com/kolah/frontgen/internal/model"
	"github.com/stretchr/testify/require"
)

func requestField(name string) string {
	return "request['" + name + "']"
}

func TestRoute(t *testing.T) {
	op := model.Operation{
		Path: "/orgs/{orgId}",
		Parameters: []model.Parameter{
			{Name: "orgId", In: model.LocationPath},
			{Name: "limit", In: model.LocationQuery},
			{Name: "x-trace", In: model.LocationHeader},
			{Name: "offset", In: model.LocationQuery},
			{Name: "session", In: model.LocationCookie},
			{Name: "limit", In: model.LocationQuery},
		},
	}

	r := Route(op)
	require.Equal(t, []string{"limit", "offset"}, r.Query)
	require.Equal(t, []string{"x-trace"}, r.Header)
	require.Equal(t, []string{"limit", "offset", "x-trace"}, r.Consumed())
}

func TestRouteNoParameters(t *testing.T) {
	r := Route(model.Operation{Path: "/health"})
	require.Empty(t, r.Query)
	require.Empty(t, r.Header)
	require.Empty(t, r.Consumed())
}

func TestPathTemplate(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/orgs/{orgId}/members/{memberId}", "/orgs/${request['orgId']}/members/${request['memberId']}"},
		{"/movies", "/movies"},
		{"/files/{name}.json", "/files/${request['name']}.json"},
		{"/odd/`tick`", "/odd/\\`tick\\`"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := Route(model.Operation{Path: tt.path})
			require.Equal(t, tt.expected, r.PathTemplate(requestField))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, []string{"orgId", "memberId"}, Placeholders("/orgs/{orgId}/members/{memberId}"))
	require.Empty(t, Placeholders("/movies"))
}

func TestUnbound(t *testing.T) {
	op := model.Operation{
		Path: "/orgs/{orgId}/members/{memberId}",
		Parameters: []model.Parameter{
			{Name: "orgId", In: model.LocationPath},
			{Name: "memberId", In: model.LocationQuery},
		},
	}
	require.Equal(t, []string{"memberId"}, Unbound(op))

	op.Parameters = append(op.Parameters, model.Parameter{Name: "memberId", In: model.LocationPath})
	require.Empty(t, Unbound(op))
}
