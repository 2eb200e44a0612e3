// Package rules provides the built-in quality analyzers for rustqual.
//
//   - path_import: qualified call paths that should be use declarations
//   - format_args: format macros with too many positional placeholders
//   - empty_lines: blank lines inside function bodies
//   - inline_comments: non-doc comments inside function bodies
//   - mod_rs: mod.rs files that should be named after their directory
package rules

import "github.com/quallab/rustqual/pkg/analyzer"

//nolint:gochecknoinits // Blank-import registration of built-in analyzers.
func init() {
	RegisterAll(analyzer.DefaultRegistry)
}

// RegisterAll registers all built-in analyzers with the given registry.
func RegisterAll(registry *analyzer.Registry) {
	registry.Register(NewPathImportAnalyzer())
	registry.Register(NewFormatArgsAnalyzer())
	registry.Register(NewEmptyLinesAnalyzer())
	registry.Register(NewInlineCommentsAnalyzer())
	registry.Register(NewModRsAnalyzer())
}
