package display

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/quallab/rustqual/internal/ui/pretty"
	"github.com/quallab/rustqual/pkg/differ"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// Options configures diff presentation.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Input supplies interactive answers (typically os.Stdin).
	Input io.Reader

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// TermWidth overrides terminal width detection when positive.
	TermWidth int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Input:  os.Stdin,
		Color:  "auto",
	}
}

// Presenter writes diff results in one of three modes: full grid, summary,
// or interactive selection.
type Presenter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewPresenter creates a presenter for the given options.
func NewPresenter(opts Options) *Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Presenter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// ShowFull writes the full diff in a responsive grid layout.
//
// Every file block is rendered once, the column count is chosen from the
// terminal width, and blocks flow into columns newspaper-style.
func (p *Presenter) ShowFull(result *differ.DiffResult) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.styles.SummaryTitle.Render("DIFF OUTPUT"))

	termWidth := p.termWidth()

	blocks := make([]RenderedBlock, 0, len(result.Files))
	for i := range result.Files {
		blocks = append(blocks, RenderFileBlock(&result.Files[i], p.styles))
	}

	columns := CalculateColumns(blocks, termWidth)
	if columns > 1 {
		layout := fmt.Sprintf("Layout: %d columns (terminal width: %d)", columns, termWidth)
		fmt.Fprintf(p.out, "%s\n\n", p.styles.Dim.Render(layout))
	}

	RenderGrid(p.out, blocks, columns)
	p.totals(result)
}

// ShowSummary writes a compact per-file, per-analyzer issue count overview.
func (p *Presenter) ShowSummary(result *differ.DiffResult) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.styles.SummaryTitle.Render("DIFF SUMMARY"))

	for i := range result.Files {
		file := &result.Files[i]
		fmt.Fprintf(p.out, "%s:\n", p.styles.FileHeader.Render(file.Path))

		counts := make(map[string]int)
		for _, entry := range file.Entries {
			counts[entry.Analyzer]++
		}

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(p.out, "  %s: %d %s\n",
				p.styles.Analyzer.Render(name), counts[name], pluralIssues(counts[name]))
		}
		fmt.Fprintln(p.out)
	}

	p.totals(result)
}

// ShowInteractive presents each change and asks whether to apply it.
//
// Answers: y applies the change, n skips it, a applies everything remaining,
// q stops without processing the rest. The returned entries are the ones the
// user accepted, in presentation order.
func (p *Presenter) ShowInteractive(result *differ.DiffResult) ([]differ.DiffEntry, error) {
	selected := make([]differ.DiffEntry, 0, result.TotalChanges())
	applyAll := false
	quit := false

	fmt.Fprintf(p.out, "\n%s\n\n", p.styles.SummaryTitle.Render("INTERACTIVE DIFF"))
	fmt.Fprintf(p.out, "%s\n", p.styles.Dim.Render("Commands: y=yes, n=no, a=all, q=quit"))

	reader := bufio.NewReader(p.opts.Input)

	for i := range result.Files {
		if quit {
			break
		}
		file := &result.Files[i]

		fmt.Fprintf(p.out, "\n%s\n\n", p.styles.FileHeader.Render(fmt.Sprintf("File: %s", file.Path)))

		for idx, entry := range file.Entries {
			p.printEntry(idx, len(file.Entries), entry)

			if applyAll {
				selected = append(selected, entry)
				continue
			}

			answer, err := p.prompt(reader)
			if err != nil {
				return nil, fmt.Errorf("read answer: %w", err)
			}

			switch answer {
			case "y", "yes":
				selected = append(selected, entry)
				fmt.Fprintln(p.out, p.styles.Accepted.Render("Applied"))
			case "n", "no":
				fmt.Fprintln(p.out, p.styles.Skipped.Render("Skipped"))
			case "a", "all":
				applyAll = true
				selected = append(selected, entry)
				fmt.Fprintln(p.out, p.styles.Accepted.Render("Applying all remaining changes"))
			case "q", "quit":
				quit = true
				fmt.Fprintln(p.out, p.styles.Rejected.Render("Quit"))
			default:
				fmt.Fprintln(p.out, p.styles.Rejected.Render("Invalid input, skipping"))
			}
			fmt.Fprintln(p.out)

			if quit {
				break
			}
		}
	}

	fmt.Fprintf(p.out, "\n%s\n",
		p.styles.SummaryValue.Render(fmt.Sprintf("Selected %d changes for application", len(selected))))

	return selected, nil
}

// printEntry writes one change with its position within the file.
func (p *Presenter) printEntry(idx, total int, entry differ.DiffEntry) {
	fmt.Fprintf(p.out, "%s %s\n",
		p.styles.SummaryValue.Render(fmt.Sprintf("[%d/%d]", idx+1, total)),
		p.styles.Analyzer.Render(entry.Analyzer))
	fmt.Fprintln(p.out, p.styles.Dim.Render(fmt.Sprintf("Line %d:", entry.Line)))
	fmt.Fprintln(p.out, p.styles.DiffRemove.Render(fmt.Sprintf("- %s", entry.Original)))
	if entry.Import != "" {
		fmt.Fprintln(p.out, p.styles.DiffAdd.Render(fmt.Sprintf("+ %s", entry.Import)))
	}
	fmt.Fprintln(p.out, p.styles.DiffAdd.Render(fmt.Sprintf("+ %s", entry.Modified)))
	fmt.Fprintln(p.out)
}

// prompt asks for one answer and normalizes it.
func (p *Presenter) prompt(reader *bufio.Reader) (string, error) {
	fmt.Fprint(p.out, p.styles.Prompt.Render("Apply this fix? [y/n/a/q]: "))

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF with no pending input means quit.
		if err == io.EOF {
			return "q", nil
		}
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// totals writes the aggregate change count.
func (p *Presenter) totals(result *differ.DiffResult) {
	summary := fmt.Sprintf("Total: %d changes in %d files", result.TotalChanges(), result.TotalFiles())
	fmt.Fprintln(p.out, p.styles.SummaryValue.Render(summary))
}

// termWidth resolves the terminal width for grid layout.
func (p *Presenter) termWidth() int {
	if p.opts.TermWidth > 0 {
		return p.opts.TermWidth
	}
	if f, ok := p.out.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
