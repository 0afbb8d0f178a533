// Package config loads the yai TOML configuration.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"go.creack.net/yai/parser"
)

// EnvVar names a configuration file used when no --config flag is given.
const EnvVar = "YAI_CONFIG"

// Output formats.
const (
	FormatDump   = "dump"
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatDump, FormatPretty, FormatJSON, FormatYAML}

// Config holds the complete configuration.
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
}

// ParserConfig holds parser limits.
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig holds CLI rendering settings.
type OutputConfig struct {
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by YAI_CONFIG, or returns Default when unset.
// The returned source is the path used, empty for defaults.
func LoadFromEnv() (cfg *Config, source string, err error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), "", nil
	}
	cfg, err = Load(path)
	return cfg, path, err
}

func (c *Config) applyDefaults() {
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = parser.DefaultMaxDepth
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatDump
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 1 {
		return fmt.Errorf("parser.max_depth must be >= 1, got %d", c.Parser.MaxDepth)
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	return nil
}

// ParserOptions converts the parser section.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{MaxDepth: c.Parser.MaxDepth}
}
