package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/rustast"
)

// EmptyLinesAnalyzer detects blank lines inside function bodies.
//
// A blank line in the middle of a function suggests the function does more
// than one thing and should be split. Blank lines directly after the opening
// brace or before the closing brace are tolerated.
type EmptyLinesAnalyzer struct{}

// NewEmptyLinesAnalyzer creates a new empty lines analyzer.
func NewEmptyLinesAnalyzer() *EmptyLinesAnalyzer {
	return &EmptyLinesAnalyzer{}
}

// Name returns the analyzer identifier.
func (a *EmptyLinesAnalyzer) Name() string { return "empty_lines" }

// Description returns what the analyzer checks.
func (a *EmptyLinesAnalyzer) Description() string {
	return "Blank lines inside function bodies"
}

// Analyze scans every function body for interior blank lines.
func (a *EmptyLinesAnalyzer) Analyze(ctx context.Context, file *rustast.SourceFile) ([]analyzer.Issue, error) {
	root, err := file.Root(ctx)
	if err != nil {
		return nil, err
	}

	var issues []analyzer.Issue

	for _, fn := range rustast.CollectKind(root, "function_item") {
		if err := ctx.Err(); err != nil {
			return issues, fmt.Errorf("analyze cancelled: %w", err)
		}

		body := fn.ChildByFieldName("body")
		if body == nil {
			continue
		}

		issues = append(issues, a.checkBlock(file, rustast.StartLine(body), rustast.EndLine(body))...)
	}

	return issues, nil
}

// checkBlock flags blank lines strictly inside the block spanning
// [start, end], skipping lines adjacent to either brace.
func (a *EmptyLinesAnalyzer) checkBlock(file *rustast.SourceFile, start, end int) []analyzer.Issue {
	var issues []analyzer.Issue

	for n := start + 1; n < end; n++ {
		line, ok := file.Line(n)
		if !ok || strings.TrimSpace(line) != "" {
			continue
		}

		if prev, ok := file.Line(n - 1); ok && strings.HasSuffix(strings.TrimSpace(prev), "{") {
			continue
		}
		if next, ok := file.Line(n + 1); ok && strings.HasPrefix(strings.TrimSpace(next), "}") {
			continue
		}

		issues = append(issues, analyzer.Issue{
			Line:    n,
			Column:  1,
			Message: "Empty line in function body indicates untamed complexity",
			Fix:     analyzer.SimpleFix(""),
		})
	}

	return issues
}

// Fix removes the flagged blank lines.
func (a *EmptyLinesAnalyzer) Fix(ctx context.Context, file *rustast.SourceFile) (int, error) {
	return analyzer.ApplyAll(ctx, file, a)
}
