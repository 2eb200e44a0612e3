package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/internal/ui/pretty"
	"github.com/quallab/rustqual/pkg/differ"
)

func plainStyles() *pretty.Styles {
	return pretty.NewStyles(false)
}

func TestRenderFileBlockEmpty(t *testing.T) {
	block := RenderFileBlock(differ.NewFileDiff("test.rs"), plainStyles())

	assert.NotEmpty(t, block.Lines)
	assert.GreaterOrEqual(t, block.Width, MinBlockWidth)
	assert.Equal(t, "File: test.rs", block.Lines[0])
}

func TestRenderFileBlockWithEntry(t *testing.T) {
	file := differ.NewFileDiff("test.rs")
	file.AddEntry(differ.DiffEntry{
		Line:        10,
		Analyzer:    "empty_lines",
		Original:    "old",
		Modified:    "new",
		Description: "desc",
	})

	block := RenderFileBlock(file, plainStyles())
	joined := strings.Join(block.Lines, "\n")

	assert.Contains(t, joined, "empty_lines (1 issue)")
	assert.Contains(t, joined, "Line 10")
	assert.Contains(t, joined, "-    old")
	assert.Contains(t, joined, "+    new")
	assert.NotContains(t, joined, "Imports")
}

func TestRenderFileBlockGroupsImports(t *testing.T) {
	file := differ.NewFileDiff("test.rs")
	for _, imp := range []string{"use std::fs::write;", "use std::io::read;", "use std::fs::write;"} {
		file.AddEntry(differ.DiffEntry{
			Line:     1,
			Analyzer: "path_import",
			Original: "x",
			Modified: "y",
			Import:   imp,
		})
	}

	block := RenderFileBlock(file, plainStyles())
	joined := strings.Join(block.Lines, "\n")

	assert.Contains(t, joined, "Imports (file top)")
	assert.Contains(t, joined, "+    use std::{fs::write, io::read};")
}

func TestRenderFileBlockMultipleAnalyzers(t *testing.T) {
	file := differ.NewFileDiff("test.rs")
	file.AddEntry(differ.DiffEntry{Line: 10, Analyzer: "empty_lines", Original: "a", Modified: ""})
	file.AddEntry(differ.DiffEntry{Line: 20, Analyzer: "empty_lines", Original: "b", Modified: ""})
	file.AddEntry(differ.DiffEntry{Line: 30, Analyzer: "path_import", Original: "c", Modified: "d"})

	block := RenderFileBlock(file, plainStyles())
	joined := strings.Join(block.Lines, "\n")

	assert.Contains(t, joined, "empty_lines (2 issues)")
	assert.Contains(t, joined, "path_import (1 issue)")
}

func TestRenderFileBlockWidthTracksLongestLine(t *testing.T) {
	file := differ.NewFileDiff("test.rs")
	long := strings.Repeat("x", 70)
	file.AddEntry(differ.DiffEntry{Line: 1, Analyzer: "a", Original: long, Modified: "short"})

	block := RenderFileBlock(file, plainStyles())

	// "-    " prefix plus the 70-char line.
	require.Equal(t, 75, block.Width)
}
