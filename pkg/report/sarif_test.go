package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/analyzer"
)

func TestSARIFWriterWriteGlobal(t *testing.T) {
	g := NewGlobalReport()
	g.Add(sampleReport())

	var buf bytes.Buffer
	w := NewSARIFWriter(Options{Writer: &buf})
	require.NoError(t, w.WriteGlobal(g))

	var output SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, sarifVersion, output.Version)
	require.Len(t, output.Runs, 1)

	run := output.Runs[0]
	assert.Equal(t, "rustqual", run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "path_import", run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "empty_lines", run.Tool.Driver.Rules[1].ID)

	require.Len(t, run.Results, 2)
	first := run.Results[0]
	assert.Equal(t, "path_import", first.RuleID)
	assert.Equal(t, "warning", first.Level)
	require.Len(t, first.Locations, 1)
	assert.Equal(t, "src/main.rs", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 3, first.Locations[0].PhysicalLocation.Region.StartLine)

	require.Len(t, first.Fixes, 1)
	assert.Equal(t, "Add import: use std::fs::read_to_string;", first.Fixes[0].Description.Text)
}

func TestSARIFLineZeroClampsToOne(t *testing.T) {
	g := NewGlobalReport()
	r := NewReport("src/lib.rs")
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "empty_lines",
		Issues:   []analyzer.Issue{{Line: 0, Message: "file level finding"}},
	})
	g.Add(r)

	var buf bytes.Buffer
	w := NewSARIFWriter(Options{Writer: &buf})
	require.NoError(t, w.WriteGlobal(g))

	var output SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Runs[0].Results, 1)
	assert.Equal(t, 1, output.Runs[0].Results[0].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestSARIFRemovalFixHasNoInsertedContent(t *testing.T) {
	g := NewGlobalReport()
	r := NewReport("src/main.rs")
	r.AddResult(analyzer.AnalysisResult{
		Analyzer: "empty_lines",
		Issues:   []analyzer.Issue{fixableIssue(5, "Empty line in function body")},
	})
	g.Add(r)

	var buf bytes.Buffer
	w := NewSARIFWriter(Options{Writer: &buf})
	require.NoError(t, w.WriteGlobal(g))

	var output SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	fixes := output.Runs[0].Results[0].Fixes
	require.Len(t, fixes, 1)
	assert.Equal(t, "Remove line", fixes[0].Description.Text)
	require.Len(t, fixes[0].ArtifactChanges, 1)
	assert.Nil(t, fixes[0].ArtifactChanges[0].Replacements[0].InsertedContent)
}
