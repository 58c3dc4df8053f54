package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const DefaultFile = "swagdecl.yaml"

type Config struct {
	Spec        string         `koanf:"spec"`
	Title       string         `koanf:"title"`
	URL         string         `koanf:"url"`
	BasePath    string         `koanf:"base-path"`
	OutputDir   string         `koanf:"output-dir"`
	Templates   TemplateConfig `koanf:"templates"`
	IncludeTags []string       `koanf:"include-tags"`
	ExcludeTags []string       `koanf:"exclude-tags"`
	Tree        TreeConfig     `koanf:"tree"`
	Output      OutputConfig   `koanf:"output"`
	Log         LogConfig      `koanf:"log"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type TreeConfig struct {
	AllMethods     bool   `koanf:"all-methods"`
	UngroupedTitle string `koanf:"ungrouped-title"`
}

type OutputConfig struct {
	IndentUnit  string `koanf:"indent-unit"`
	IndentCount int    `koanf:"indent-count"`
	TimeLayout  string `koanf:"time-layout"`
	Extension   string `koanf:"extension"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaults() map[string]any {
	return map[string]any{
		"output-dir":          "types",
		"output.indent-unit":  " ",
		"output.indent-count": 2,
		"output.time-layout":  "2006/1/2 15:04:05",
		"output.extension":    ".d.ts",
		"log.level":           "info",
		"log.format":          "console",
	}
}

// BindCommonFlags binds the flags shared by every subcommand.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: swagdecl.yaml)")
	flags.StringP("spec", "s", "", "Swagger 2.0 document path")
	flags.String("title", "", "Label of the Swagger source (default: info.title)")
	flags.String("url", "", "Identifier of the Swagger source (default: spec path)")
	flags.String("base-path", "", "Base path overriding the document's basePath")
	flags.String("templates", "", "Custom templates directory")
	flags.StringSlice("include-tags", nil, "Tags to include (exclusive)")
	flags.StringSlice("exclude-tags", nil, "Tags to exclude")
	flags.Bool("all-methods", false, "Process every method of a path, not only the first")
	flags.String("ungrouped-title", "", "Collect untagged operations into a group with this title")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: console, json")
}

// BindOutputFlags binds the flags of commands that render declarations.
func BindOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("output-dir", "o", "", "Output directory for declaration files")
	flags.String("indent-unit", "", "Indentation unit (default: a space)")
	flags.Int("indent-count", 0, "Indentation units per level (default: 2)")
	flags.String("time-layout", "", "Go time layout of the @update header")
	flags.String("extension", "", "Extension of generated files (default: .d.ts)")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
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

	if cfg.URL == "" {
		cfg.URL = cfg.Spec
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

	stringKeys := []struct{ flag, key string }{
		{"spec", "spec"},
		{"title", "title"},
		{"url", "url"},
		{"base-path", "base-path"},
		{"templates", "templates.dir"},
		{"ungrouped-title", "tree.ungrouped-title"},
		{"log-level", "log.level"},
		{"log-format", "log.format"},
		{"output-dir", "output-dir"},
		{"indent-unit", "output.indent-unit"},
		{"time-layout", "output.time-layout"},
		{"extension", "output.extension"},
	}
	for _, s := range stringKeys {
		if v := getString(s.flag); v != "" {
			m[s.key] = v
		}
	}

	if v := getStringSlice("include-tags"); len(v) > 0 {
		m["include-tags"] = v
	}
	if v := getStringSlice("exclude-tags"); len(v) > 0 {
		m["exclude-tags"] = v
	}

	if flagChanged("all-methods") {
		m["tree.all-methods"] = getBool("all-methods")
	}
	if flagChanged("indent-count") {
		if v, err := cmd.Flags().GetInt("indent-count"); err == nil {
			m["output.indent-count"] = v
		}
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Output.IndentCount < 1 {
		return fmt.Errorf("invalid indent count: %d (must be at least 1)", c.Output.IndentCount)
	}
	if c.Output.IndentUnit == "" {
		return fmt.Errorf("indent unit must not be empty")
	}
	if c.Output.Extension == "" {
		return fmt.Errorf("file extension must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Log.Level)
	}

	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s (valid: console, json)", c.Log.Format)
	}

	return nil
}
