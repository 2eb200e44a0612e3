package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/quallab/rustqual/pkg/analyzer"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileReport `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileReport represents a single file's results.
type JSONFileReport struct {
	Path   string      `json:"path"`
	Issues []JSONIssue `json:"issues"`
}

// JSONIssue represents a single finding.
type JSONIssue struct {
	Analyzer string   `json:"analyzer"`
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"`
	Message  string   `json:"message"`
	Fixable  bool     `json:"fixable"`
	Fix      *JSONFix `json:"fix,omitempty"`
}

// JSONFix represents a proposed automatic repair.
type JSONFix struct {
	Kind        string `json:"kind"`
	Replacement string `json:"replacement,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Import      string `json:"import,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	TotalIssues     int            `json:"totalIssues"`
	FixableIssues   int            `json:"fixableIssues"`
	ByAnalyzer      map[string]int `json:"byAnalyzer"`
}

// JSONWriter renders reports as JSON.
type JSONWriter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONWriter creates a new JSON report writer.
func NewJSONWriter(opts Options) *JSONWriter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	return &JSONWriter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// WriteGlobal encodes the whole run as a single JSON document.
func (w *JSONWriter) WriteGlobal(g *GlobalReport) (err error) {
	defer func() {
		if flushErr := w.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(g)

	encoder := json.NewEncoder(w.bw)
	if !w.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func buildJSONOutput(g *GlobalReport) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileReport, 0),
		Summary: JSONSummary{
			ByAnalyzer: make(map[string]int),
		},
	}

	if g == nil {
		return output
	}

	if len(g.Reports) > 0 {
		output.Files = make([]JSONFileReport, 0, len(g.Reports))
	}

	for _, r := range g.Reports {
		fileReport := JSONFileReport{
			Path:   r.Path,
			Issues: make([]JSONIssue, 0),
		}

		for _, res := range r.Results {
			for _, issue := range res.Issues {
				jsonIssue := JSONIssue{
					Analyzer: res.Analyzer,
					Line:     issue.Line,
					Column:   issue.Column,
					Message:  issue.Message,
					Fixable:  issue.Fixable(),
				}
				if issue.Fix.Available() {
					jsonIssue.Fix = &JSONFix{
						Kind:        fixKindString(issue.Fix.Kind),
						Replacement: issue.Fix.Replacement,
						Pattern:     issue.Fix.Pattern,
						Import:      issue.Fix.Import,
					}
				}

				fileReport.Issues = append(fileReport.Issues, jsonIssue)
				output.Summary.TotalIssues++
				output.Summary.ByAnalyzer[res.Analyzer]++
				if issue.Fixable() {
					output.Summary.FixableIssues++
				}
			}
		}

		if len(fileReport.Issues) > 0 {
			output.Summary.FilesWithIssues++
		}
		output.Files = append(output.Files, fileReport)
		output.Summary.FilesChecked++
	}

	return output
}

// fixKindString converts a fix kind to its wire representation.
func fixKindString(kind analyzer.FixKind) string {
	switch kind {
	case analyzer.FixSimple:
		return "simple"
	case analyzer.FixWithImport:
		return "with_import"
	default:
		return "none"
	}
}
