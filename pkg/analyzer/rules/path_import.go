package rules

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/rustast"
)

// PathImportAnalyzer detects qualified call paths that should be imports.
//
// It distinguishes free functions reached through module paths (should be
// imported) from associated functions on types, enum variants, and associated
// constants (should stay qualified).
type PathImportAnalyzer struct{}

// NewPathImportAnalyzer creates a new path import analyzer.
func NewPathImportAnalyzer() *PathImportAnalyzer {
	return &PathImportAnalyzer{}
}

// Name returns the analyzer identifier.
func (a *PathImportAnalyzer) Name() string { return "path_import" }

// Description returns what the analyzer checks.
func (a *PathImportAnalyzer) Description() string {
	return "Qualified paths that should be use declarations"
}

// Analyze walks expression paths and flags the ones worth importing.
func (a *PathImportAnalyzer) Analyze(ctx context.Context, file *rustast.SourceFile) ([]analyzer.Issue, error) {
	root, err := file.Root(ctx)
	if err != nil {
		return nil, err
	}

	var issues []analyzer.Issue
	var walkErr error

	rustast.Walk(root, func(n *sitter.Node) bool {
		if walkErr != nil {
			return false
		}
		if err := ctx.Err(); err != nil {
			walkErr = fmt.Errorf("analyze cancelled: %w", err)
			return false
		}

		// Paths inside use declarations are already imports.
		if n.Type() == "use_declaration" {
			return false
		}

		if n.Type() != "scoped_identifier" || !isOutermostPath(n) {
			return true
		}

		path := file.NodeText(n)
		if !shouldExtractToImport(strings.Split(path, "::")) {
			return false
		}

		last := path[strings.LastIndex(path, "::")+2:]
		issues = append(issues, analyzer.Issue{
			Line:    rustast.StartLine(n),
			Column:  rustast.StartColumn(n),
			Message: fmt.Sprintf("Use import instead of path: %s", path),
			Fix:     analyzer.ImportFix(fmt.Sprintf("use %s;", path), path, last),
		})
		return false
	})

	if walkErr != nil {
		return issues, walkErr
	}
	return issues, nil
}

// Fix rewrites the qualified calls and adds the use declarations.
func (a *PathImportAnalyzer) Fix(ctx context.Context, file *rustast.SourceFile) (int, error) {
	return analyzer.ApplyAll(ctx, file, a)
}

// isOutermostPath reports whether n is the full path expression rather than
// a nested prefix of a longer one.
func isOutermostPath(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return true
	}
	switch parent.Type() {
	case "scoped_identifier", "scoped_type_identifier":
		return false
	}
	return true
}

// shouldExtractToImport decides whether a path names a free function that
// belongs in a use declaration.
//
// Rejected shapes: paths rooted at a type (first segment capitalized),
// associated functions and enum variants (penultimate or last segment
// capitalized), and associated constants (SCREAMING_SNAKE last segment).
// Standard library roots qualify with two segments; everything else needs
// three, so crate-local two-segment paths like `helpers::run` stay put.
func shouldExtractToImport(segments []string) bool {
	if len(segments) < 2 {
		return false
	}

	first, last := segments[0], segments[len(segments)-1]
	penultimate := segments[len(segments)-2]

	if startsUpper(first) || startsUpper(last) || startsUpper(penultimate) {
		return false
	}
	if isScreamingSnakeCase(last) {
		return false
	}

	if isStdlibRoot(first) {
		return true
	}
	return len(segments) >= 3 && startsLower(first)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

// isScreamingSnakeCase reports whether s looks like a constant name.
func isScreamingSnakeCase(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) && r != '_' && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isStdlibRoot(name string) bool {
	switch name {
	case "std", "core", "alloc":
		return true
	}
	return false
}
