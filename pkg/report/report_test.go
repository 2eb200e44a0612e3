package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/analyzer"
)

func fixableIssue(line int, message string) analyzer.Issue {
	return analyzer.Issue{
		Line:    line,
		Message: message,
		Fix:     analyzer.SimpleFix(""),
	}
}

func importIssue(line int) analyzer.Issue {
	return analyzer.Issue{
		Line:    line,
		Message: "Use import instead of path: std::fs::read_to_string",
		Fix: analyzer.ImportFix(
			"use std::fs::read_to_string;",
			"std::fs::read_to_string",
			"read_to_string",
		),
	}
}

func sampleReport() *Report {
	r := NewReport("src/main.rs")
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "path_import",
		Path:     "src/main.rs",
		Issues:   []analyzer.Issue{importIssue(3)},
	})
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "empty_lines",
		Path:     "src/main.rs",
		Issues: []analyzer.Issue{
			fixableIssue(5, "Empty line in function body indicates untamed complexity"),
		},
	})
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "format_args",
		Path:     "src/main.rs",
	})
	return r
}

func TestNewReport(t *testing.T) {
	r := NewReport("src/lib.rs")
	assert.Equal(t, "src/lib.rs", r.Path)
	assert.Empty(t, r.Results)
	assert.True(t, r.Clean())
}

func TestReportTotals(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, 2, r.TotalIssues())
	assert.Equal(t, 2, r.TotalFixable())
	assert.False(t, r.Clean())
}

func TestReportTotalsUnfixable(t *testing.T) {
	r := NewReport("src/main.rs")
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "format_args",
		Issues: []analyzer.Issue{{
			Line:    2,
			Message: "Use named format arguments instead of positional",
			Fix:     analyzer.NoFix(),
		}},
	})
	assert.Equal(t, 1, r.TotalIssues())
	assert.Equal(t, 0, r.TotalFixable())
}

func TestGlobalReportTotals(t *testing.T) {
	g := NewGlobalReport()
	g.Add(sampleReport())
	g.Add(NewReport("src/clean.rs"))

	assert.Equal(t, 2, g.TotalFiles())
	assert.Equal(t, 1, g.FilesWithIssues())
	assert.Equal(t, 2, g.TotalIssues())
	assert.Equal(t, 2, g.TotalFixable())
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Options{Writer: &buf, Color: "never"})
	require.NoError(t, w.WriteReport(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Quality report for: src/main.rs")
	assert.Contains(t, out, "[path_import]")
	assert.Contains(t, out, "3 - Use import instead of path: std::fs::read_to_string")
	assert.Contains(t, out, "Fix: Add import: use std::fs::read_to_string;")
	assert.Contains(t, out, "(Will replace path with short name)")
	assert.Contains(t, out, "[empty_lines]")
	assert.Contains(t, out, "Fix: Remove line")
	assert.Contains(t, out, "Total issues: 2")
	assert.Contains(t, out, "Fixable: 2")

	// Clean analyzers are omitted.
	assert.NotContains(t, out, "[format_args]")
}

func TestWriteReportFileLevelIssue(t *testing.T) {
	r := NewReport("src/utils/mod.rs")
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "mod_rs",
		Issues: []analyzer.Issue{{
			Message: "Use `utils.rs` instead of `utils/mod.rs` (modern module style)",
			Fix:     analyzer.NoFix(),
		}},
	})

	var buf bytes.Buffer
	w := NewWriter(Options{Writer: &buf, Color: "never"})
	require.NoError(t, w.WriteReport(r))

	out := buf.String()
	assert.Contains(t, out, "[mod_rs]")
	assert.Contains(t, out, "file - Use `utils.rs` instead of `utils/mod.rs`")
	assert.NotContains(t, out, "0 - Use")
}

func TestWriteGlobalSkipsCleanFiles(t *testing.T) {
	g := NewGlobalReport()
	g.Add(sampleReport())
	g.Add(NewReport("src/clean.rs"))

	var buf bytes.Buffer
	w := NewWriter(Options{Writer: &buf, Color: "never"})
	require.NoError(t, w.WriteGlobal(g))

	out := buf.String()
	assert.Contains(t, out, "src/main.rs")
	assert.NotContains(t, out, "src/clean.rs")
	assert.Contains(t, out, "Found 2 issues in 1 file (2 fixable)")
	assert.Contains(t, out, "2 files checked")
}

func TestWriteGlobalVerboseIncludesCleanFiles(t *testing.T) {
	g := NewGlobalReport()
	g.Add(NewReport("src/clean.rs"))

	var buf bytes.Buffer
	w := NewWriter(Options{Writer: &buf, Color: "never", Verbose: true})
	require.NoError(t, w.WriteGlobal(g))

	out := buf.String()
	assert.Contains(t, out, "Quality report for: src/clean.rs")
	assert.Contains(t, out, "All files passed!")
	assert.Contains(t, out, "1 file checked")
}

func TestWriteReportMultilineMessage(t *testing.T) {
	r := NewReport("src/main.rs")
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "inline_comments",
		Issues: []analyzer.Issue{{
			Line:    4,
			Message: "Inline comment found: \"// todo\"\nMove to doc block # Notes section:\n/// - todo",
			Fix:     analyzer.NoFix(),
		}},
	})

	var buf bytes.Buffer
	w := NewWriter(Options{Writer: &buf, Color: "never"})
	require.NoError(t, w.WriteReport(r))

	out := buf.String()
	assert.Contains(t, out, "4 - Inline comment found")
	assert.Contains(t, out, "\n    Move to doc block # Notes section:")
}
