// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Diff block components
	FileHeader   lipgloss.Style
	Separator    lipgloss.Style
	ImportHeader lipgloss.Style
	DiffAdd      lipgloss.Style
	DiffRemove   lipgloss.Style
	Analyzer     lipgloss.Style
	LineNumber   lipgloss.Style

	// Issue components
	FilePath lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	Warning      lipgloss.Style

	// Interactive prompts
	Prompt   lipgloss.Style
	Accepted lipgloss.Style
	Skipped  lipgloss.Style
	Rejected lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		// Diff block components
		FileHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ImportHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		DiffAdd:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Analyzer:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		LineNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		// Issue components
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:  lipgloss.NewStyle(),

		// Summary styles
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		// Interactive prompts
		Prompt:   lipgloss.NewStyle().Bold(true),
		Accepted: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Skipped:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Rejected: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FileHeader:   plain,
		Separator:    plain,
		ImportHeader: plain,
		DiffAdd:      plain,
		DiffRemove:   plain,
		Analyzer:     plain,
		LineNumber:   plain,
		FilePath:     plain,
		Location:     plain,
		Message:      plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Warning:      plain,
		Prompt:       plain,
		Accepted:     plain,
		Skipped:      plain,
		Rejected:     plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
