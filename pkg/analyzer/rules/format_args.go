package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/rustast"
)

// Positional placeholders below this count are still readable.
const maxPositionalPlaceholders = 2

// FormatArgsAnalyzer detects format macros drowning in positional arguments.
//
// With three or more `{}` placeholders, matching arguments to slots becomes
// guesswork; named or inline arguments keep the mapping readable. There is no
// mechanical fix because choosing the names requires a human.
type FormatArgsAnalyzer struct{}

// NewFormatArgsAnalyzer creates a new format args analyzer.
func NewFormatArgsAnalyzer() *FormatArgsAnalyzer {
	return &FormatArgsAnalyzer{}
}

// Name returns the analyzer identifier.
func (a *FormatArgsAnalyzer) Name() string { return "format_args" }

// Description returns what the analyzer checks.
func (a *FormatArgsAnalyzer) Description() string {
	return "Format macros with too many positional placeholders"
}

// Analyze inspects format-family macro invocations.
func (a *FormatArgsAnalyzer) Analyze(ctx context.Context, file *rustast.SourceFile) ([]analyzer.Issue, error) {
	root, err := file.Root(ctx)
	if err != nil {
		return nil, err
	}

	var issues []analyzer.Issue

	for _, mac := range rustast.CollectKind(root, "macro_invocation") {
		if err := ctx.Err(); err != nil {
			return issues, fmt.Errorf("analyze cancelled: %w", err)
		}

		name := mac.ChildByFieldName("macro")
		if name == nil || !isFormatMacro(file.NodeText(name)) {
			continue
		}

		if strings.Count(file.NodeText(mac), "{}") <= maxPositionalPlaceholders {
			continue
		}

		issues = append(issues, analyzer.Issue{
			Line:    rustast.StartLine(mac),
			Column:  rustast.StartColumn(mac),
			Message: "Use named format arguments instead of positional",
			Fix:     analyzer.NoFix(),
		})
	}

	return issues, nil
}

// Fix is a no-op: the analyzer reports unfixable issues.
func (a *FormatArgsAnalyzer) Fix(_ context.Context, _ *rustast.SourceFile) (int, error) {
	return 0, nil
}

func isFormatMacro(name string) bool {
	switch name {
	case "format", "println", "print", "write", "writeln":
		return true
	}
	return false
}
