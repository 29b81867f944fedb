package frontend

import (
	"strings"

	"github.com/kolah/frontgen/internal/model"
)

// DecodeMethod is the Response body reader used for a status code. Its value
// is the name of the fetch Response method.
type DecodeMethod string

const (
	DecodeJSON DecodeMethod = "json"
	DecodeText DecodeMethod = "text"
	DecodeBlob DecodeMethod = "blob"
)

var decodeOrder = []DecodeMethod{DecodeJSON, DecodeText, DecodeBlob}

type DecodeGroup struct {
	Method DecodeMethod
	Codes  []string
}

// DecodeMethodOf picks the reader for a response from its first media type.
// Responses without a body are read as text.
func DecodeMethodOf(r model.Response) DecodeMethod {
	ct := r.ContentType()
	switch {
	case ct == "":
		return DecodeText
	case model.IsJSONMediaType(ct):
		return DecodeJSON
	case strings.HasPrefix(strings.ToLower(ct), "text/"):
		return DecodeText
	default:
		return DecodeBlob
	}
}

// GroupByDecodeMethod buckets the numeric status codes of responses by decode
// method. Groups come in json, text, blob order and empty groups are left out.
func GroupByDecodeMethod(responses []model.Response) []DecodeGroup {
	byMethod := make(map[DecodeMethod][]string)
	for _, r := range responses {
		if !IsNumericCode(r.StatusCode) {
			continue
		}
		m := DecodeMethodOf(r)
		byMethod[m] = append(byMethod[m], r.StatusCode)
	}

	var groups []DecodeGroup
	for _, m := range decodeOrder {
		if codes := byMethod[m]; len(codes) > 0 {
			groups = append(groups, DecodeGroup{Method: m, Codes: codes})
		}
	}
	return groups
}

// AllCodes lists the numeric status codes of responses in document order.
func AllCodes(responses []model.Response) []string {
	var codes []string
	for _, r := range responses {
		if IsNumericCode(r.StatusCode) {
			codes = append(codes, r.StatusCode)
		}
	}
	return codes
}

// StatusUnion renders codes as a literal union type, or number when there are
// none.
func StatusUnion(codes []string) string {
	if len(codes) == 0 {
		return "number"
	}
	return strings.Join(codes, " | ")
}

// IsPlainJSON200 reports whether responses declare a 200 with a JSON body.
func IsPlainJSON200(responses []model.Response) bool {
	for _, r := range responses {
		if r.StatusCode == "200" && model.IsJSONMediaType(r.ContentType()) {
			return true
		}
	}
	return false
}

func IsNumericCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
