package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/rustast"
)

// parseSource parses Rust source for analyzer tests and registers cleanup.
func parseSource(t *testing.T, src string) *rustast.SourceFile {
	t.Helper()
	file, err := rustast.Parse(context.Background(), "test.rs", []byte(src))
	require.NoError(t, err)
	t.Cleanup(file.Close)
	return file
}

// analyze runs an analyzer over src and returns the issues.
func analyze(t *testing.T, a analyzer.Analyzer, src string) []analyzer.Issue {
	t.Helper()
	file := parseSource(t, src)
	issues, err := a.Analyze(context.Background(), file)
	require.NoError(t, err)
	return issues
}

func countOccurrences(s, substr string) int {
	return strings.Count(s, substr)
}
