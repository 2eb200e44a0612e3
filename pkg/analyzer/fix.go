package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/quallab/rustqual/pkg/rustast"
)

// ApplyFix applies an issue's fix to the file in place.
//
// FixNone and line-less issues are no-ops. FixSimple replaces the flagged
// line, removing it when the replacement is empty. FixWithImport rewrites the
// first occurrence of the pattern on the flagged line and inserts the import
// at the top of the file unless an identical use declaration already exists.
func ApplyFix(ctx context.Context, file *rustast.SourceFile, issue Issue) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("fix cancelled: %w", err)
	}

	if !issue.Fix.Available() || issue.Line == 0 {
		return nil
	}

	switch issue.Fix.Kind {
	case FixSimple:
		if issue.Fix.Replacement == "" {
			return file.RemoveLine(issue.Line)
		}
		return file.ReplaceLine(issue.Line, issue.Fix.Replacement)

	case FixWithImport:
		line, ok := file.Line(issue.Line)
		if !ok {
			return fmt.Errorf("fix line %d: out of range (file has %d lines)", issue.Line, file.LineCount())
		}
		rewritten := strings.Replace(line, issue.Fix.Pattern, issue.Fix.Replacement, 1)
		if err := file.ReplaceLine(issue.Line, rewritten); err != nil {
			return err
		}
		if issue.Fix.Import != "" && !hasImport(file, issue.Fix.Import) {
			return file.InsertLines(1, issue.Fix.Import)
		}
		return nil
	}

	return nil
}

// ApplyAll repeatedly analyzes the file and applies the first available
// fix until the analyzer reports nothing fixable. Fixes shift line
// numbers, so re-analysis after every applied fix keeps the remaining
// issues anchored correctly. Returns the number of fixes applied.
func ApplyAll(ctx context.Context, file *rustast.SourceFile, a Analyzer) (int, error) {
	applied := 0
	lastRemaining := -1

	for {
		if err := ctx.Err(); err != nil {
			return applied, fmt.Errorf("fix cancelled: %w", err)
		}

		issues, err := a.Analyze(ctx, file)
		if err != nil {
			return applied, fmt.Errorf("analyzer %s: %w", a.Name(), err)
		}

		var next *Issue
		remaining := 0
		for i := range issues {
			if issues[i].Fixable() {
				if next == nil {
					next = &issues[i]
				}
				remaining++
			}
		}
		if next == nil {
			return applied, nil
		}

		// A fix that does not reduce the fixable count would loop
		// forever; stop instead.
		if lastRemaining >= 0 && remaining >= lastRemaining {
			return applied, nil
		}
		lastRemaining = remaining

		if err := ApplyFix(ctx, file, *next); err != nil {
			return applied, err
		}
		applied++
	}
}

// hasImport reports whether the file already contains the use declaration.
func hasImport(file *rustast.SourceFile, imp string) bool {
	want := strings.TrimSpace(imp)
	for n := 1; n <= file.LineCount(); n++ {
		line, _ := file.Line(n)
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
