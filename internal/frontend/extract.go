// Package frontend holds the pieces shared by the frontend client emitters:
// operation extraction, response classification, parameter routing, generated
// names and the output dialects.
package frontend

import (
	"log/slog"
	"slices"

	"github.com/kolah/frontgen/internal/model"
	"github.com/kolah/frontgen/internal/typescript"
)

type ExtractOptions struct {
	IncludeTags []string
	ExcludeTags []string
	Logger      *slog.Logger
}

var supportedMethods = map[model.Method]bool{
	model.MethodGet:    true,
	model.MethodPost:   true,
	model.MethodPut:    true,
	model.MethodPatch:  true,
	model.MethodDelete: true,
}

// Extract flattens the spec's paths into operations in document order and
// assigns every operation a unique ID. Path-level parameters are merged into
// each operation; the operation's own declaration wins on a name and location
// clash. The records in spec are not modified.
func Extract(spec *model.Spec, opts ExtractOptions) []model.Operation {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ids := typescript.NewOperationIDs()
	var ops []model.Operation

	for _, path := range spec.Paths {
		for _, raw := range path.Operations {
			if !supportedMethods[raw.Method] {
				logger.Debug("skipping unsupported method", "method", raw.Method, "path", path.Path)
				continue
			}
			// IDs are handed out before filtering so they do not shift with
			// the tag selection.
			id := ids.Next(path.Path, raw.Method, raw)
			if !tagsMatch(raw.Tags, opts.IncludeTags, opts.ExcludeTags) {
				logger.Debug("skipping operation filtered by tags", "operation", id)
				continue
			}

			op := raw
			op.ID = id
			op.Parameters = mergeParameters(path.Parameters, raw.Parameters)
			ops = append(ops, op)
		}
	}

	return ops
}

func mergeParameters(pathLevel, opLevel []model.Parameter) []model.Parameter {
	merged := make([]model.Parameter, 0, len(pathLevel)+len(opLevel))
	overridden := make(map[int]bool)

	for _, p := range pathLevel {
		idx := slices.IndexFunc(opLevel, func(o model.Parameter) bool {
			return o.Name == p.Name && o.In == p.In
		})
		if idx >= 0 {
			merged = append(merged, opLevel[idx])
			overridden[idx] = true
			continue
		}
		merged = append(merged, p)
	}
	for i, p := range opLevel {
		if !overridden[i] {
			merged = append(merged, p)
		}
	}
	return merged
}

func tagsMatch(tags, include, exclude []string) bool {
	for _, tag := range tags {
		if slices.Contains(exclude, tag) {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, tag := range tags {
		if slices.Contains(include, tag) {
			return true
		}
	}
	return false
}
