package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quallab/rustqual/internal/ui/pretty"
	"github.com/quallab/rustqual/pkg/analyzer"
)

const (
	bufWriterSize  = 32 * 1024
	separatorWidth = 40
)

// Options configures report output.
type Options struct {
	// Writer receives the rendered report. Defaults to os.Stdout.
	Writer io.Writer

	// Color controls ANSI styling: "auto", "always", or "never".
	Color string

	// Verbose includes clean files in the output.
	Verbose bool

	// Compact disables indentation for machine-readable formats.
	Compact bool
}

// DefaultOptions returns options writing colorized output to stdout.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Color:  "auto",
	}
}

// Writer renders quality reports with optional ANSI styling.
type Writer struct {
	opts   Options
	styles *pretty.Styles
}

// NewWriter creates a report writer for the given options.
func NewWriter(opts Options) *Writer {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Writer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// WriteReport renders a single file's report.
func (w *Writer) WriteReport(r *Report) (err error) {
	bw := bufio.NewWriterSize(w.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	w.writeReport(bw, r)
	return nil
}

// WriteGlobal renders every file report followed by a run summary.
// Clean files are skipped unless Verbose is set.
func (w *Writer) WriteGlobal(g *GlobalReport) (err error) {
	bw := bufio.NewWriterSize(w.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	for _, r := range g.Reports {
		if r.Clean() && !w.opts.Verbose {
			continue
		}
		w.writeReport(bw, r)
		fmt.Fprintln(bw)
	}

	w.writeSummary(bw, g)
	return nil
}

func (w *Writer) writeReport(bw *bufio.Writer, r *Report) {
	fmt.Fprintln(bw, w.styles.FileHeader.Render("Quality report for: "+r.Path))
	fmt.Fprintln(bw, w.styles.Separator.Render(strings.Repeat("─", separatorWidth)))

	for _, res := range r.Results {
		if res.Clean() {
			continue
		}

		fmt.Fprintln(bw)
		fmt.Fprintln(bw, w.styles.Analyzer.Render("["+res.Analyzer+"]"))
		for _, issue := range res.Issues {
			w.writeIssue(bw, issue)
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Total issues: %s\n", w.styles.SummaryValue.Render(fmt.Sprintf("%d", r.TotalIssues())))
	fmt.Fprintf(bw, "Fixable: %s\n", w.styles.SummaryValue.Render(fmt.Sprintf("%d", r.TotalFixable())))
}

func (w *Writer) writeIssue(bw *bufio.Writer, issue analyzer.Issue) {
	loc := "file"
	if issue.Line > 0 {
		loc = fmt.Sprintf("%d", issue.Line)
	}
	location := w.styles.LineNumber.Render(loc)
	message := indentContinuation(issue.Message)
	fmt.Fprintf(bw, "  %s - %s\n", location, w.styles.Message.Render(message))

	if !issue.Fix.Available() {
		return
	}
	switch issue.Fix.Kind {
	case analyzer.FixWithImport:
		fmt.Fprintf(bw, "    Fix: Add import: %s\n", issue.Fix.Import)
		fmt.Fprintln(bw, "    (Will replace path with short name)")
	case analyzer.FixSimple:
		if issue.Fix.Replacement == "" {
			fmt.Fprintln(bw, "    Fix: Remove line")
		} else {
			fmt.Fprintf(bw, "    Fix: %s\n", issue.Fix.Replacement)
		}
	}
}

func (w *Writer) writeSummary(bw *bufio.Writer, g *GlobalReport) {
	checked := fmt.Sprintf("%d %s checked", g.TotalFiles(), pluralFiles(g.TotalFiles()))

	if g.TotalIssues() == 0 {
		fmt.Fprintln(bw, w.styles.Success.Render("All files passed!"))
		fmt.Fprintln(bw, w.styles.Dim.Render(checked))
		return
	}

	fmt.Fprintln(bw, w.styles.Failure.Render(fmt.Sprintf(
		"Found %d %s in %d %s (%d fixable)",
		g.TotalIssues(), pluralIssues(g.TotalIssues()),
		g.FilesWithIssues(), pluralFiles(g.FilesWithIssues()),
		g.TotalFixable(),
	)))
	fmt.Fprintln(bw, w.styles.Dim.Render(checked))
}

// indentContinuation keeps multi-line messages aligned under the first line.
func indentContinuation(message string) string {
	return strings.ReplaceAll(message, "\n", "\n    ")
}

func pluralIssues(n int) string {
	if n == 1 {
		return "issue"
	}
	return "issues"
}

func pluralFiles(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
