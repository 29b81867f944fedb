package frontend

import "github.com/kolah/frontgen/internal/model"

// Classify reports whether op is generated in full-response mode, returning
// a status/headers/body envelope instead of the decoded body. Operations
// without exactly one success response, or whose only success response has
// no body, always are.
func Classify(op model.Operation, globalFullResponse bool) bool {
	var success []model.Response
	for _, r := range op.Responses {
		if r.IsSuccess() {
			success = append(success, r)
		}
	}
	if len(success) != 1 {
		return true
	}
	if success[0].ContentType() == "" {
		return true
	}
	return globalFullResponse
}
