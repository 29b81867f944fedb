package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const DefaultFile = "frontgen.yaml"

type Config struct {
	Spec        string         `koanf:"spec"`
	Name        string         `koanf:"name"`
	IncludeTags []string       `koanf:"include-tags"`
	ExcludeTags []string       `koanf:"exclude-tags"`
	Frontend    FrontendConfig `koanf:"frontend"`
}

type FrontendConfig struct {
	OutputDir    string `koanf:"output-dir"`
	Language     string `koanf:"language"`
	FullResponse bool   `koanf:"full-response"`
	// Types forces the types module on or off. Unset means the language
	// default: on for ts, off for js.
	Types            *bool `koanf:"types"`
	StrictPathParams bool  `koanf:"strict-path-params"`
}

// EmitTypes resolves the Types setting against the language default.
func (f FrontendConfig) EmitTypes(languageDefault bool) bool {
	if f.Types == nil {
		return languageDefault
	}
	return *f.Types
}

var defaults = map[string]any{
	"name":              "api",
	"frontend.language": "ts",
}

// BindCommonFlags binds output-independent flags to the generate command
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: "+DefaultFile+")")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.StringP("name", "n", "", "Name of the generated client (default: api)")
	flags.StringSlice("include-tags", nil, "Tags to include (exclusive)")
	flags.StringSlice("exclude-tags", nil, "Tags to exclude")
	flags.Bool("dry-run", false, "Print output without writing files")
	flags.BoolP("verbose", "v", false, "Log debug output")
}

// BindFrontendFlags binds the flags of the frontend client output
func BindFrontendFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("output-dir", "o", "", "Output directory for the generated client")
	flags.StringP("language", "l", "", "Output language: ts, js (default: ts)")
	flags.Bool("full-response", false, "Return status, headers and body from every call")
	flags.Bool("types", false, "Generate the types module (default: only for ts)")
	flags.Bool("strict-path-params", false, "Fail on path placeholders without a path parameter")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("name"); v != "" {
		m["name"] = v
	}
	if v := getStringSlice("include-tags"); len(v) > 0 {
		m["include-tags"] = v
	}
	if v := getStringSlice("exclude-tags"); len(v) > 0 {
		m["exclude-tags"] = v
	}

	if v := getString("output-dir"); v != "" {
		m["frontend.output-dir"] = v
	}
	if v := getString("language"); v != "" {
		m["frontend.language"] = v
	}
	// Booleans only override the file when given explicitly, so that
	// --types=false can switch the types module off.
	for _, name := range []string{"full-response", "types", "strict-path-params"} {
		if flagChanged(name) {
			m["frontend."+name] = getBool(name)
		}
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Frontend.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}
	if strings.ContainsAny(c.Name, `/\`) {
		return fmt.Errorf("invalid client name: %s (must not contain path separators)", c.Name)
	}

	validLanguages := map[string]bool{"ts": true, "js": true, "typescript": true, "javascript": true}
	if !validLanguages[c.Frontend.Language] {
		return fmt.Errorf("invalid language: %s (valid: ts, js)", c.Frontend.Language)
	}

	return nil
}
