// Package formatter runs rustfmt with a fixed quality configuration.
// Settings are passed on the command line so projects do not need a
// local .rustfmt.toml.
package formatter

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// RustfmtConfig holds the formatting settings passed to rustfmt.
type RustfmtConfig struct {
	TrailingComma             string
	BraceStyle                string
	StructFieldAlignThreshold int
	WrapComments              bool
	FormatCodeInDocComments   bool
	StructLitSingleLine       bool
	MaxWidth                  int
	ImportsGranularity        string
	GroupImports              string
	ReorderImports            bool
	UnstableFeatures          bool
}

// DefaultConfig returns the project quality settings.
func DefaultConfig() RustfmtConfig {
	return RustfmtConfig{
		TrailingComma:             "Never",
		BraceStyle:                "SameLineWhere",
		StructFieldAlignThreshold: 20,
		WrapComments:              true,
		FormatCodeInDocComments:   true,
		StructLitSingleLine:       false,
		MaxWidth:                  99,
		ImportsGranularity:        "Crate",
		GroupImports:              "StdExternalCrate",
		ReorderImports:            true,
		UnstableFeatures:          true,
	}
}

// Args converts the configuration to rustfmt command-line arguments,
// one --config key=value pair per setting.
func (c RustfmtConfig) Args() []string {
	settings := []string{
		fmt.Sprintf("trailing_comma=%s", c.TrailingComma),
		fmt.Sprintf("brace_style=%s", c.BraceStyle),
		fmt.Sprintf("struct_field_align_threshold=%d", c.StructFieldAlignThreshold),
		fmt.Sprintf("wrap_comments=%t", c.WrapComments),
		fmt.Sprintf("format_code_in_doc_comments=%t", c.FormatCodeInDocComments),
		fmt.Sprintf("struct_lit_single_line=%t", c.StructLitSingleLine),
		fmt.Sprintf("max_width=%d", c.MaxWidth),
		fmt.Sprintf("imports_granularity=%s", c.ImportsGranularity),
		fmt.Sprintf("group_imports=%s", c.GroupImports),
		fmt.Sprintf("reorder_imports=%t", c.ReorderImports),
		fmt.Sprintf("unstable_features=%t", c.UnstableFeatures),
	}

	args := make([]string, 0, len(settings)*2)
	for _, setting := range settings {
		args = append(args, "--config", setting)
	}
	return args
}

// Options controls how Format invokes cargo.
type Options struct {
	// Dir is the working directory for the cargo invocation. Empty
	// means the process working directory.
	Dir string

	// Stdout and Stderr receive the cargo output. Nil defaults to the
	// process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Format runs cargo +nightly fmt with the given configuration.
// Rustfmt's unstable options require the nightly toolchain.
func Format(ctx context.Context, cfg RustfmtConfig, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	args := append([]string{"+nightly", "fmt", "--"}, cfg.Args()...)

	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cargo fmt: %w", err)
	}
	return nil
}
