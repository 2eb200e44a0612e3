// Package analyzer provides the analyzer contract, issue model, and registry
// for rustqual.
package analyzer

import (
	"context"

	"github.com/quallab/rustqual/pkg/rustast"
)

// FixKind discriminates the fix payload attached to an issue.
type FixKind int

const (
	// FixNone means the issue must be resolved by hand.
	FixNone FixKind = iota

	// FixSimple replaces the flagged line wholesale with Replacement.
	// An empty Replacement removes the line.
	FixSimple

	// FixWithImport rewrites the first occurrence of Pattern on the flagged
	// line with Replacement and adds Import at the top of the file.
	FixWithImport
)

// Fix describes how an issue can be repaired automatically.
type Fix struct {
	Kind FixKind

	// Replacement is the new line text (FixSimple) or the substring that
	// replaces Pattern (FixWithImport).
	Replacement string

	// Pattern is the substring on the flagged line to rewrite. Only
	// meaningful for FixWithImport.
	Pattern string

	// Import is the full use declaration to add, e.g.
	// "use std::fs::read_to_string;". Only meaningful for FixWithImport.
	Import string
}

// NoFix returns a Fix carrying no repair.
func NoFix() Fix {
	return Fix{Kind: FixNone}
}

// SimpleFix returns a whole-line replacement fix.
func SimpleFix(replacement string) Fix {
	return Fix{Kind: FixSimple, Replacement: replacement}
}

// ImportFix returns a pattern rewrite fix that also introduces an import.
func ImportFix(imp, pattern, replacement string) Fix {
	return Fix{
		Kind:        FixWithImport,
		Import:      imp,
		Pattern:     pattern,
		Replacement: replacement,
	}
}

// Available reports whether the fix actually repairs anything.
func (f Fix) Available() bool {
	return f.Kind != FixNone
}

// Issue is a single finding reported by an analyzer.
type Issue struct {
	// Line is the 1-based line the issue is anchored to.
	// Zero marks a file-level issue with no line anchor.
	Line int

	// Column is the 1-based column within the line. Zero means unknown.
	Column int

	// Message describes the issue to a human.
	Message string

	// Fix is the proposed automatic repair, if any.
	Fix Fix
}

// Fixable reports whether the issue carries an automatic fix.
func (i Issue) Fixable() bool {
	return i.Fix.Available()
}

// AnalysisResult collects what one analyzer found in one file.
type AnalysisResult struct {
	// Analyzer is the name of the analyzer that produced the result.
	Analyzer string

	// Path is the analyzed file.
	Path string

	// Issues are the findings, in the order the analyzer reported them.
	Issues []Issue
}

// Clean reports whether the analysis found nothing.
func (r AnalysisResult) Clean() bool {
	return len(r.Issues) == 0
}

// FixableCount returns the number of issues carrying an automatic fix.
func (r AnalysisResult) FixableCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Fixable() {
			n++
		}
	}
	return n
}

// Analyzer defines the interface all quality analyzers implement.
type Analyzer interface {
	// Name returns the unique snake_case identifier for this analyzer.
	Name() string

	// Description returns a short explanation of what the analyzer checks.
	Description() string

	// Analyze inspects the file and returns the issues found.
	//
	// Analyzers must:
	//   - Never mutate the file.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not findings.
	Analyze(ctx context.Context, file *rustast.SourceFile) ([]Issue, error)

	// Fix applies every available repair this analyzer knows about to
	// the file in place and returns the number of fixes applied.
	// Unfixable issues are left untouched.
	Fix(ctx context.Context, file *rustast.SourceFile) (int, error)
}
