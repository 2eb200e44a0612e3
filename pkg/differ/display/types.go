// Package display renders diff results for the terminal: per-file blocks,
// grouped import recommendations, and a responsive multi-column grid layout.
package display

// RenderedBlock is a pre-rendered file diff block with its dimensions.
//
// Lines carry embedded ANSI color codes; Width is the maximum visible width
// in characters, excluding escape sequences. The grid layout uses Width to
// decide how many blocks fit side by side.
type RenderedBlock struct {
	Lines []string
	Width int
}

// LineCount returns the number of lines in the rendered block.
func (b RenderedBlock) LineCount() int {
	return len(b.Lines)
}
