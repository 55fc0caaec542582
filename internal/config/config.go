// Package config provides configuration management for the tabclean CLI.
//
// Values are layered with koanf, highest precedence first: command-line
// flags, TABCLEAN_* environment variables, a YAML config file, defaults.
// Cleaning thresholds and replacement values are fixed and not configurable.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	tbio "github.com/paveg/tabclean/internal/io"
	"github.com/spf13/pflag"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Default configuration values
const (
	DefaultOutput    = OutputTable
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatText
	DefaultMaxRows   = 20
	DefaultDelimiter = ","
	EnvPrefix        = "TABCLEAN_"
)

// DefaultConfigFiles are looked up in the working directory when no config
// file is given explicitly.
var DefaultConfigFiles = []string{".tabclean.yaml", ".tabclean.yml"}

// Config represents the CLI configuration
type Config struct {
	Output    string    `koanf:"output" yaml:"output"`         // table, json or yaml
	LogLevel  string    `koanf:"log_level" yaml:"log_level"`   // debug, info, warn or error
	LogFormat string    `koanf:"log_format" yaml:"log_format"` // text or json
	MaxRows   int       `koanf:"max_rows" yaml:"max_rows"`     // rows printed by table output (0 = all)
	CSV       CSVConfig `koanf:"csv" yaml:"csv"`

	// NullValues are extra cell strings read as nulls by every reader.
	NullValues []string `koanf:"null_values" yaml:"null_values"`

	// FileUsed is the config file that was loaded, if any.
	FileUsed string `koanf:"-" yaml:"-"`
}

// CSVConfig configures the CSV reader
type CSVConfig struct {
	Delimiter string `koanf:"delimiter" yaml:"delimiter"`
	Comment   string `koanf:"comment" yaml:"comment"`
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		Output:    DefaultOutput,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		MaxRows:   DefaultMaxRows,
		CSV: CSVConfig{
			Delimiter: DefaultDelimiter,
		},
	}
}

func defaultsMap() map[string]interface{} {
	d := NewConfig()
	return map[string]interface{}{
		"output":        d.Output,
		"log_level":     d.LogLevel,
		"log_format":    d.LogFormat,
		"max_rows":      d.MaxRows,
		"csv.delimiter": d.CSV.Delimiter,
		"csv.comment":   d.CSV.Comment,
	}
}

// Load loads configuration from defaults, a YAML file, environment
// variables and flags. cfgFile may be empty, in which case the files in
// DefaultConfigFiles are tried. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Config file
	fileUsed := findConfigFile(cfgFile)
	if cfgFile != "" && fileUsed == "" {
		return nil, fmt.Errorf("config file %s not found", cfgFile)
	}
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", fileUsed, err)
		}
	}

	// 3. Environment: TABCLEAN_LOG_LEVEL -> log_level, TABCLEAN_CSV__DELIMITER -> csv.delimiter
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "delimiter", "comment":
				key = "csv." + key
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.FileUsed = fileUsed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the config file to use, or "" when none exists.
// Priority: explicit path > .tabclean.yaml > .tabclean.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	for _, name := range DefaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be one of table, json, yaml; got %q", c.Output)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.MaxRows < 0 {
		return fmt.Errorf("max_rows must be non-negative, got %d", c.MaxRows)
	}

	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", c.CSV.Delimiter)
	}

	if utf8.RuneCountInString(c.CSV.Comment) > 1 {
		return fmt.Errorf("csv.comment must be at most one character, got %q", c.CSV.Comment)
	}

	return nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// LoadOptions converts the configuration into loader options
func (c *Config) LoadOptions() tbio.Options {
	opts := tbio.DefaultOptions()
	opts.CSV.Delimiter, _ = utf8.DecodeRuneInString(c.CSV.Delimiter)
	if c.CSV.Comment != "" {
		opts.CSV.Comment, _ = utf8.DecodeRuneInString(c.CSV.Comment)
	}
	opts.CSV.NullValues = c.NullValues
	opts.HTML.NullValues = c.NullValues
	return opts
}
