package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kolah/frontgen/internal/codegen"
	"github.com/kolah/frontgen/internal/config"
	"github.com/kolah/frontgen/internal/loader"
	"github.com/logrusorgru/aurora/v3"
	"github.com/spf13/cobra"
)

func NewFrontendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frontend",
		Short: "Generate a TypeScript or JavaScript fetch client",
		RunE:  runFrontendGenerate,
	}

	config.BindFrontendFlags(cmd)

	return cmd
}

func runFrontendGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	au := aurora.NewAurora(!noColor)
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("%s %s\n", au.Yellow("Warning:"), w)
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return fmt.Errorf("transforming spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, spec.Info.Title, spec.Info.Version)
	cmd.PrintErrf("  Schemas: %d\n", len(spec.Schemas))
	cmd.PrintErrf("  Operations: %d\n", len(spec.Operations))

	gen, err := codegen.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	outputs, err := gen.Generate(spec)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		for _, out := range outputs {
			cmd.Printf("// %s\n%s\n", out.Filename, out.Content)
		}
		return nil
	}

	if err := os.MkdirAll(cfg.Frontend.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, out := range outputs {
		path := filepath.Join(cfg.Frontend.OutputDir, out.Filename)
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.PrintErrf("%s %s\n", au.Green("Written:"), path)
	}

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
