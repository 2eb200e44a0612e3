package differ

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/rustast"
)

// Generate analyzes the file at path and previews every fixable issue the
// given analyzers report.
func Generate(ctx context.Context, path string, analyzers []analyzer.Analyzer) (*FileDiff, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	file, err := rustast.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return FromFile(ctx, file, analyzers)
}

// FromFile previews fixes for an already parsed file.
//
// The file is never mutated: the modified text of each entry is computed
// from the fix description alone, so the preview is exact for the fix that
// would be applied without any fix being applied.
func FromFile(ctx context.Context, file *rustast.SourceFile, analyzers []analyzer.Analyzer) (*FileDiff, error) {
	fileDiff := NewFileDiff(file.Path)

	for _, a := range analyzers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("diff cancelled: %w", err)
		}

		issues, err := a.Analyze(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("analyzer %s: %w", a.Name(), err)
		}

		for _, issue := range issues {
			entry, ok := previewIssue(file, a.Name(), issue)
			if !ok {
				continue
			}
			fileDiff.AddEntry(entry)
		}
	}

	return fileDiff, nil
}

// previewIssue renders one issue's fix as a diff entry. Issues without a fix
// or without a line anchor have nothing to preview.
func previewIssue(file *rustast.SourceFile, analyzerName string, issue analyzer.Issue) (DiffEntry, bool) {
	if issue.Line == 0 || !issue.Fix.Available() {
		return DiffEntry{}, false
	}

	// An out-of-range line previews against empty original text rather
	// than failing the whole file.
	original, _ := file.Line(issue.Line)

	entry := DiffEntry{
		Line:        issue.Line,
		Analyzer:    analyzerName,
		Original:    original,
		Description: issue.Message,
	}

	switch issue.Fix.Kind {
	case analyzer.FixSimple:
		entry.Modified = issue.Fix.Replacement
	case analyzer.FixWithImport:
		entry.Modified = strings.Replace(original, issue.Fix.Pattern, issue.Fix.Replacement, 1)
		entry.Import = issue.Fix.Import
	default:
		return DiffEntry{}, false
	}

	return entry, true
}
