package rules

import (
	"context"
	"fmt"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/modrs"
	"github.com/quallab/rustqual/pkg/rustast"
)

// ModRsAnalyzer flags mod.rs files that should be renamed after their
// parent directory.
//
// The finding is anchored to the file rather than a line, so Line is
// zero. The repair is a file move, which cannot be expressed as a
// buffer edit; the fix command performs the move itself, so Fix here
// reports nothing.
type ModRsAnalyzer struct{}

// NewModRsAnalyzer creates a new mod.rs analyzer.
func NewModRsAnalyzer() *ModRsAnalyzer {
	return &ModRsAnalyzer{}
}

// Name returns the analyzer identifier.
func (a *ModRsAnalyzer) Name() string { return "mod_rs" }

// Description returns what the analyzer checks.
func (a *ModRsAnalyzer) Description() string {
	return "mod.rs files that should be named after their directory"
}

// Analyze flags the file when it is named mod.rs.
func (a *ModRsAnalyzer) Analyze(ctx context.Context, file *rustast.SourceFile) ([]analyzer.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze cancelled: %w", err)
	}

	move, ok := modrs.Detect(file.Path)
	if !ok {
		return nil, nil
	}

	return []analyzer.Issue{{
		Message: move.Message(),
		Fix:     analyzer.NoFix(),
	}}, nil
}

// Fix never edits the buffer; moving the file is done by the caller.
func (a *ModRsAnalyzer) Fix(ctx context.Context, file *rustast.SourceFile) (int, error) {
	return 0, nil
}
