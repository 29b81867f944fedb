package frontend

import (
	"fmt"
	"strings"
)

// UnboundPathParamError is returned in strict mode when a path template
// placeholder has no matching path parameter.
type UnboundPathParamError struct {
	OperationID string
	Path        string
	Names       []string
}

func (e *UnboundPathParamError) Error() string {
	return fmt.Sprintf("operation %s: path %s has placeholders without a path parameter: %s",
		e.OperationID, e.Path, strings.Join(e.Names, ", "))
}
