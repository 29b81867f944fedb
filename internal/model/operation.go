package model

import "strings"

type Operation struct {
	ID          string
	Method      Method
	Path        string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
	Deprecated  bool
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodQuery   Method = "QUERY" // OpenAPI 3.2
)

// Lower returns the method as it appears as a path item key.
func (m Method) Lower() string {
	return strings.ToLower(string(m))
}

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationCookie ParameterLocation = "cookie"
)

type Parameter struct {
	Name        string
	In          ParameterLocation
	Description string
	Required    bool
	Deprecated  bool
	Schema      *Schema
}

type RequestBody struct {
	Content []MediaTypeContent
}

// JSON returns the first JSON media type of the body, if any.
func (rb *RequestBody) JSON() (MediaTypeContent, bool) {
	if rb == nil {
		return MediaTypeContent{}, false
	}
	for _, c := range rb.Content {
		if IsJSONMediaType(c.MediaType) {
			return c, true
		}
	}
	return MediaTypeContent{}, false
}

type MediaTypeContent struct {
	MediaType string
	Schema    *Schema
}

type Response struct {
	StatusCode string
	Content    []MediaTypeContent
}

// ContentType returns the first declared media type, or "" when the response
// has no body.
func (r Response) ContentType() string {
	if len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].MediaType
}

// Schema returns the schema of the first declared media type.
func (r Response) Schema() *Schema {
	if len(r.Content) == 0 {
		return nil
	}
	return r.Content[0].Schema
}

func (r Response) IsSuccess() bool {
	return strings.HasPrefix(r.StatusCode, "2")
}

// IsJSONMediaType matches application/json and structured +json suffixes.
func IsJSONMediaType(mediaType string) bool {
	mt, _, _ := strings.Cut(strings.ToLower(mediaType), ";")
	mt = strings.TrimSpace(mt)
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
