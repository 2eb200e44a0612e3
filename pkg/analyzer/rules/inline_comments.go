package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/rustast"
)

// InlineCommentsAnalyzer detects non-doc comments inside function bodies.
//
// Explanations belong in the function's doc block, not scattered through the
// body. The analyzer suggests a `# Notes` doc entry tied to the code line the
// comment describes. Moving prose is not mechanical, so there is no fix.
type InlineCommentsAnalyzer struct{}

// NewInlineCommentsAnalyzer creates a new inline comments analyzer.
func NewInlineCommentsAnalyzer() *InlineCommentsAnalyzer {
	return &InlineCommentsAnalyzer{}
}

// Name returns the analyzer identifier.
func (a *InlineCommentsAnalyzer) Name() string { return "inline_comments" }

// Description returns what the analyzer checks.
func (a *InlineCommentsAnalyzer) Description() string {
	return "Inline comments inside function bodies"
}

// Analyze scans function bodies for // comments that are not doc comments.
func (a *InlineCommentsAnalyzer) Analyze(ctx context.Context, file *rustast.SourceFile) ([]analyzer.Issue, error) {
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

func (a *InlineCommentsAnalyzer) checkBlock(file *rustast.SourceFile, start, end int) []analyzer.Issue {
	var issues []analyzer.Issue

	for n := start; n < end; n++ {
		line, ok := file.Line(n)
		if !ok {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "///") {
			continue
		}

		comment := strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))

		suggestion := fmt.Sprintf("Move to doc block # Notes section:\n/// - %s", comment)
		if code, ok := a.findRelatedCodeLine(file, n, end); ok {
			suggestion = fmt.Sprintf("Move to doc block # Notes section:\n/// - %s - `%s`", comment, code)
		}

		issues = append(issues, analyzer.Issue{
			Line:    n,
			Column:  strings.Index(line, "//") + 1,
			Message: fmt.Sprintf("Inline comment found: %q\n%s", comment, suggestion),
			Fix:     analyzer.NoFix(),
		})
	}

	return issues
}

// findRelatedCodeLine locates the code the comment describes: the next
// non-empty, non-comment line before the block ends.
func (a *InlineCommentsAnalyzer) findRelatedCodeLine(file *rustast.SourceFile, after, end int) (string, bool) {
	for n := after + 1; n < end; n++ {
		line, ok := file.Line(n)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		return trimmed, true
	}
	return "", false
}

// Fix is a no-op: the analyzer reports unfixable issues.
func (a *InlineCommentsAnalyzer) Fix(_ context.Context, _ *rustast.SourceFile) (int, error) {
	return 0, nil
}
