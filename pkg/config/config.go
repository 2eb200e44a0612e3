// Package config loads rustqual configuration from .rustqual.yml files.
// Config files are discovered by searching upward from the working
// directory; CLI flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a config file with invalid values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration structure for rustqual.
type Config struct {
	// Analyzers lists the analyzers to run. Empty means all registered
	// analyzers.
	Analyzers []string `yaml:"analyzers"`

	// Exclude contains glob patterns for paths to skip during discovery.
	// Patterns match against slash-separated relative paths.
	Exclude []string `yaml:"exclude"`

	// Jobs is the number of parallel analysis workers. Zero means one
	// worker per CPU.
	Jobs int `yaml:"jobs"`

	// Color controls ANSI output: "auto", "always", or "never".
	Color string `yaml:"color"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		Color: "auto",
	}
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values against their allowed ranges.
func (c *Config) Validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always, or never, got %q", ErrInvalidConfig, c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must be non-negative, got %d", ErrInvalidConfig, c.Jobs)
	}
	return nil
}

// ToYAML serializes the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Analyzers = slices.Clone(c.Analyzers)
	clone.Exclude = slices.Clone(c.Exclude)
	return &clone
}
