package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockOfWidth(width int, lines ...string) RenderedBlock {
	return RenderedBlock{Lines: lines, Width: width}
}

func TestCalculateColumnsEmpty(t *testing.T) {
	assert.Equal(t, 1, CalculateColumns(nil, 200))
}

func TestCalculateColumnsSingleBlock(t *testing.T) {
	assert.Equal(t, 1, CalculateColumns([]RenderedBlock{blockOfWidth(40)}, 200))
}

func TestCalculateColumnsExactBoundary(t *testing.T) {
	blocks := []RenderedBlock{blockOfWidth(50), blockOfWidth(45)}

	// Two 50-wide columns plus one gap need 104 characters.
	assert.Equal(t, 2, CalculateColumns(blocks, 104))
	assert.Equal(t, 1, CalculateColumns(blocks, 103))
}

func TestCalculateColumnsNarrowTerminal(t *testing.T) {
	blocks := []RenderedBlock{blockOfWidth(100), blockOfWidth(100)}
	assert.Equal(t, 1, CalculateColumns(blocks, 80))
}

func TestCalculateColumnsWideTerminal(t *testing.T) {
	blocks := []RenderedBlock{blockOfWidth(40), blockOfWidth(40), blockOfWidth(40)}

	// Three 40-wide columns plus two gaps need 128 characters.
	assert.Equal(t, 3, CalculateColumns(blocks, 250))
	assert.Equal(t, 2, CalculateColumns(blocks, 127))
}

func TestCalculateColumnsFloorsMinWidth(t *testing.T) {
	// A 30-wide block still occupies a 40-wide column.
	blocks := []RenderedBlock{blockOfWidth(30), blockOfWidth(30)}
	assert.Equal(t, 1, CalculateColumns(blocks, 83))
	assert.Equal(t, 2, CalculateColumns(blocks, 84))
}

func TestRenderGridSingleColumn(t *testing.T) {
	var buf bytes.Buffer
	RenderGrid(&buf, []RenderedBlock{
		blockOfWidth(40, "line1", "line2"),
		blockOfWidth(40, "other"),
	}, 1)

	assert.Equal(t, "line1\nline2\n\nother\n\n", buf.String())
}

func TestRenderGridEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderGrid(&buf, nil, 2)
	assert.Empty(t, buf.String())
}

func TestRenderGridTwoColumns(t *testing.T) {
	var buf bytes.Buffer
	RenderGrid(&buf, []RenderedBlock{
		blockOfWidth(40, "left1", "left2"),
		blockOfWidth(40, "right1"),
	}, 2)

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	// Row one carries both columns, padded to the shared width plus gap.
	assert.Equal(t, PadToWidth("left1", 40)+strings.Repeat(" ", ColumnGap)+"right1", lines[0])

	// Row two pads the exhausted right column with spaces.
	assert.Equal(t, "left2", strings.TrimRight(lines[1], " "))
}

func TestRenderGridChunksRows(t *testing.T) {
	var buf bytes.Buffer
	RenderGrid(&buf, []RenderedBlock{
		blockOfWidth(40, "a"),
		blockOfWidth(40, "b"),
		blockOfWidth(40, "c"),
	}, 2)

	out := buf.String()
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")

	// The third block starts a new chunk on its own row.
	assert.Contains(t, out, "\n\nc")
}
