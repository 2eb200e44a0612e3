package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadToWidth pads text to an exact visual width with trailing spaces.
//
// ANSI escape sequences are ignored when measuring, so styled text pads the
// same as plain text. Text already at or beyond the target width is returned
// unchanged, never truncated.
func PadToWidth(text string, width int) string {
	current := lipgloss.Width(text)
	if current >= width {
		return text
	}
	return text + strings.Repeat(" ", width-current)
}
