package codegen

import (
	"fmt"
	"log/slog"

	"github.com/kolah/frontgen/internal/config"
	"github.com/kolah/frontgen/internal/frontend"
	"github.com/kolah/frontgen/internal/model"
	"github.com/kolah/frontgen/internal/targets/client"
	"github.com/kolah/frontgen/internal/targets/types"
)

type Generator struct {
	config  *config.Config
	dialect frontend.Dialect
	logger  *slog.Logger
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config, logger *slog.Logger) (*Generator, error) {
	dialect, err := frontend.DialectFor(cfg.Frontend.Language)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{
		config:  cfg,
		dialect: dialect,
		logger:  logger,
	}, nil
}

func (g *Generator) Generate(spec *model.Spec) ([]Output, error) {
	ops := frontend.Extract(spec, frontend.ExtractOptions{
		IncludeTags: g.config.IncludeTags,
		ExcludeTags: g.config.ExcludeTags,
		Logger:      g.logger,
	})
	g.logger.Debug("extracted operations", "count", len(ops), "language", g.dialect.Language())

	for _, op := range ops {
		if err := g.checkPath(op); err != nil {
			return nil, err
		}
		g.logger.Debug("classified operation",
			"operation", op.ID,
			"method", op.Method,
			"path", op.Path,
			"fullResponse", frontend.Classify(op, g.config.Frontend.FullResponse))
	}

	var outputs []Output
	name := g.config.Name

	emitTypes := g.config.Frontend.EmitTypes(g.dialect.EmitsTypes())
	if emitTypes {
		content, err := types.New().Generate(spec, ops, types.Options{
			Name:         name,
			FullResponse: g.config.Frontend.FullResponse,
		})
		if err != nil {
			return nil, fmt.Errorf("generating types: %w", err)
		}
		outputs = append(outputs, Output{
			Filename: frontend.TypesModule(name),
			Content:  content,
		})
	}

	content, err := client.New().Generate(spec, ops, client.Options{
		Name:         name,
		FullResponse: g.config.Frontend.FullResponse,
		Dialect:      g.dialect,
		Types:        emitTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("generating client: %w", err)
	}
	outputs = append(outputs, Output{
		Filename: name + "." + g.dialect.Extension(),
		Content:  content,
	})

	return outputs, nil
}

// checkPath reports placeholders no path parameter declares. They are still
// interpolated from the request; strict mode refuses them.
func (g *Generator) checkPath(op model.Operation) error {
	unbound := frontend.Unbound(op)
	if len(unbound) == 0 {
		return nil
	}
	if g.config.Frontend.StrictPathParams {
		return &frontend.UnboundPathParamError{OperationID: op.ID, Path: op.Path, Names: unbound}
	}
	g.logger.Warn("path placeholders without a path parameter",
		"operation", op.ID,
		"path", op.Path,
		"placeholders", unbound)
	return nil
}
