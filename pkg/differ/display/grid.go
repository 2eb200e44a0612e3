package display

import (
	"fmt"
	"io"
	"strings"
)

// ColumnGap is the space between columns in the grid layout.
const ColumnGap = 4

// MinBlockWidth is the narrowest a file column is allowed to be.
const MinBlockWidth = 40

// CalculateColumns determines how many file blocks fit side by side.
//
// All columns share one width, the widest block floored at MinBlockWidth.
// Column counts are tried from len(blocks) down to 1 and the largest count
// whose total width fits the terminal wins. A single column is always legal,
// however narrow the terminal.
func CalculateColumns(blocks []RenderedBlock, termWidth int) int {
	if len(blocks) == 0 {
		return 1
	}

	maxWidth := MinBlockWidth
	for _, b := range blocks {
		if b.Width > maxWidth {
			maxWidth = b.Width
		}
	}

	for cols := len(blocks); cols > 1; cols-- {
		total := cols*maxWidth + (cols-1)*ColumnGap
		if total <= termWidth {
			return cols
		}
	}

	return 1
}

// RenderGrid writes the blocks to w arranged in the given number of columns.
//
// Blocks are laid out row by row in chunks of `columns`; within a chunk every
// cell is padded to the shared column width so shorter blocks stay aligned
// beside taller neighbours.
func RenderGrid(w io.Writer, blocks []RenderedBlock, columns int) {
	if len(blocks) == 0 {
		return
	}

	if columns <= 1 {
		renderSingleColumn(w, blocks)
		return
	}

	colWidth := MinBlockWidth
	for _, b := range blocks {
		if b.Width > colWidth {
			colWidth = b.Width
		}
	}

	for start := 0; start < len(blocks); start += columns {
		chunk := blocks[start:min(start+columns, len(blocks))]

		maxLines := 0
		for _, b := range chunk {
			if b.LineCount() > maxLines {
				maxLines = b.LineCount()
			}
		}

		for row := 0; row < maxLines; row++ {
			var sb strings.Builder
			for col, b := range chunk {
				line := ""
				if row < len(b.Lines) {
					line = b.Lines[row]
				}
				sb.WriteString(PadToWidth(line, colWidth))
				if col < len(chunk)-1 {
					sb.WriteString(strings.Repeat(" ", ColumnGap))
				}
			}
			fmt.Fprintln(w, sb.String())
		}

		fmt.Fprintln(w)
	}
}

// renderSingleColumn prints each block vertically with spacing.
func renderSingleColumn(w io.Writer, blocks []RenderedBlock) {
	for _, b := range blocks {
		for _, line := range b.Lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}
