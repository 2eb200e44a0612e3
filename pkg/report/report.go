// Package report aggregates analysis results into per-file and global
// quality reports for the check command.
package report

import (
	"github.com/quallab/rustqual/pkg/analyzer"
)

// Report accumulates analysis results for a single file.
type Report struct {
	// Path is the file the results describe.
	Path string
	// Results holds one entry per analyzer, in the order they ran.
	Results []analyzer.AnalysisResult
}

// NewReport creates an empty report for the given file.
func NewReport(path string) *Report {
	return &Report{Path: path}
}

// AddResult appends an analyzer's result to the report.
func (r *Report) AddResult(result analyzer.AnalysisResult) {
	r.Results = append(r.Results, result)
}

// TotalIssues returns the number of issues across all analyzers.
func (r *Report) TotalIssues() int {
	total := 0
	for _, res := range r.Results {
		total += len(res.Issues)
	}
	return total
}

// TotalFixable returns the number of automatically fixable issues.
func (r *Report) TotalFixable() int {
	total := 0
	for _, res := range r.Results {
		total += res.FixableCount()
	}
	return total
}

// Clean reports whether no analyzer found any issue.
func (r *Report) Clean() bool {
	return r.TotalIssues() == 0
}

// GlobalReport aggregates per-file reports across a whole run.
type GlobalReport struct {
	Reports []*Report
}

// NewGlobalReport creates an empty global report.
func NewGlobalReport() *GlobalReport {
	return &GlobalReport{}
}

// Add appends a file report. Clean reports are kept so the summary can
// count checked files.
func (g *GlobalReport) Add(r *Report) {
	g.Reports = append(g.Reports, r)
}

// TotalIssues returns the number of issues across all files.
func (g *GlobalReport) TotalIssues() int {
	total := 0
	for _, r := range g.Reports {
		total += r.TotalIssues()
	}
	return total
}

// TotalFixable returns the number of fixable issues across all files.
func (g *GlobalReport) TotalFixable() int {
	total := 0
	for _, r := range g.Reports {
		total += r.TotalFixable()
	}
	return total
}

// TotalFiles returns the number of files checked.
func (g *GlobalReport) TotalFiles() int {
	return len(g.Reports)
}

// FilesWithIssues returns the number of files that have at least one issue.
func (g *GlobalReport) FilesWithIssues() int {
	count := 0
	for _, r := range g.Reports {
		if !r.Clean() {
			count++
		}
	}
	return count
}
