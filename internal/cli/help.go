// Package cli provides the Cobra command structure for rustqual.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/ui/pretty"
)

// helpPalette holds the handful of styles help output needs, kept
// separate from the report styles so the two can drift independently.
type helpPalette struct {
	heading lipgloss.Style
	command lipgloss.Style
	flag    lipgloss.Style
	example lipgloss.Style
	dim     lipgloss.Style
}

func newHelpPalette(colorEnabled bool) helpPalette {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpPalette{
			heading: plain,
			command: plain,
			flag:    plain,
			example: plain,
			dim:     plain,
		}
	}
	return helpPalette{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		example: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// helpUsageTemplate lays out usage as: usage lines, commands, flags,
// aliases, examples, footer. Section styling comes from the palette
// through the registered template funcs.
const helpUsageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}
{{- end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]
{{- end }}
{{- if .HasAvailableSubCommands }}

{{ heading "Commands:" }}
{{- range visibleCommands . }}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}
{{- end }}
{{- end }}
{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flagUsages .LocalFlags }}
{{- end }}
{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flagUsages .InheritedFlags }}
{{- end }}
{{- if gt (len .Aliases) 0 }}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end }}
{{- if .HasExample }}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end }}
{{- if .HasAvailableSubCommands }}

Run "{{ command .CommandPath }} [command] --help" for details on a command.
{{- end }}
`

// helpTemplate prefixes the usage block with the command's long (or
// short) description.
const helpTemplate = `{{ with (or .Long .Short) }}{{ trimRight . }}

{{ end }}` + helpUsageTemplate

// HelpFormatter renders styled help and usage for Cobra commands.
type HelpFormatter struct {
	palette helpPalette
}

// NewHelpFormatter creates a help formatter; color is resolved against
// the writer the help will be printed to.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{palette: newHelpPalette(pretty.IsColorEnabled(colorMode, writer))}
}

// ApplyToCommand installs the styled help and usage renderers on the
// command tree rooted at cmd.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	render := func(text string, command *cobra.Command) error {
		tmpl, err := template.New("help").Funcs(funcs).Parse(text)
		if err != nil {
			return fmt.Errorf("parse help template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	}

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return render(helpUsageTemplate, command)
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(helpTemplate, command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading":         h.palette.heading.Render,
		"command":         h.palette.command.Render,
		"dim":             h.palette.dim.Render,
		"example":         h.renderExample,
		"flagUsages":      h.styleFlagUsages,
		"visibleCommands": visibleCommands,
		"join":            strings.Join,
		"rpad":            rpad,
		"trimRight": func(s string) string {
			return strings.TrimRight(s, " \t\n")
		},
	}
}

// renderExample styles an example block, normalizing each line to a
// two-space indent.
func (h *HelpFormatter) renderExample(example string) string {
	lines := strings.Split(strings.Trim(example, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			lines[i] = ""
			continue
		}
		lines[i] = "  " + h.palette.example.Render(trimmed)
	}
	return strings.Join(lines, "\n")
}

// styleFlagUsages colors the flag column of a pflag usage block,
// leaving the aligned description column untouched.
func (h *HelpFormatter) styleFlagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimRight(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine colors one usage line up to the alignment gap pflag
// inserts before the description. Wrapped description lines carry no
// leading dash and pass through unchanged.
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" || !strings.HasPrefix(trimmed, "-") {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	gap := descriptionGap(trimmed)
	if gap < 0 {
		return indent + h.palette.flag.Render(trimmed)
	}
	column := strings.TrimRight(trimmed[:gap], " ")
	return indent + h.palette.flag.Render(column) + "   " + trimmed[gap:]
}

// descriptionGap returns the index where the description column starts,
// or -1 when the line holds the flag column only.
func descriptionGap(line string) int {
	run := 0
	for i, r := range line {
		switch {
		case r == ' ':
			run++
		case run >= 2:
			return i
		default:
			run = 0
		}
	}
	return -1
}

// visibleCommands lists the subcommands that belong in help output.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	visible := make([]*cobra.Command, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() || sub.Name() == "help" {
			visible = append(visible, sub)
		}
	}
	return visible
}

// rpad pads str with spaces on the right to the given width.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}
