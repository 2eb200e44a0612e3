package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// envVarPrefix is the prefix for all rustqual environment variables.
const envVarPrefix = "RUSTQUAL_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ANALYZERS": {field: "analyzers", typ: envTypeSlice},
	"EXCLUDE":   {field: "exclude", typ: envTypeSlice},
	"JOBS":      {field: "jobs", typ: envTypeInt},
	"COLOR":     {field: "color", typ: envTypeString},
}

// ApplyEnv applies environment variable overrides to the configuration.
// Variables are prefixed with RUSTQUAL_ (e.g. RUSTQUAL_JOBS). Overrides
// sit between the config file and command-line flags in precedence.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: invalid integer for %s: %q", ErrInvalidConfig, envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("%w: unknown field type for %s", ErrInvalidConfig, envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field name.
func setStringField(cfg *Config, field, value string) error {
	switch field {
	case "color":
		cfg.Color = value
	default:
		return fmt.Errorf("%w: unknown string field: %s", ErrInvalidConfig, field)
	}
	return nil
}

// setIntField sets an integer field on the config by field name.
func setIntField(cfg *Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("%w: unknown integer field: %s", ErrInvalidConfig, field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field name.
func setSliceField(cfg *Config, field string, value []string) error {
	switch field {
	case "analyzers":
		cfg.Analyzers = value
	case "exclude":
		cfg.Exclude = value
	default:
		return fmt.Errorf("%w: unknown slice field: %s", ErrInvalidConfig, field)
	}
	return nil
}

// ListEnvVars returns the supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"RUSTQUAL_ANALYZERS": "Comma-separated list of analyzers to run",
		"RUSTQUAL_EXCLUDE":   "Comma-separated list of exclude glob patterns",
		"RUSTQUAL_JOBS":      "Number of parallel workers (0 = auto)",
		"RUSTQUAL_COLOR":     "Color mode: auto, always, or never",
	}
}
