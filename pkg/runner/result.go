package runner

import "github.com/quallab/rustqual/pkg/report"

// FileOutcome is the per-file result of an analysis run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Report holds the analysis results. Nil when the file errored or
	// was skipped.
	Report *report.Report

	// Skipped is set when the file was not analyzed, for example when
	// language detection decided it is not Rust source.
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully analyzed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped by the language gate.
	FilesSkipped int

	// FilesErrored is the number of files that failed to read or parse.
	FilesErrored int

	// IssuesTotal is the total number of issues across all files.
	IssuesTotal int

	// IssuesFixable is the number of automatically fixable issues.
	IssuesFixable int

	// FilesWithIssues is the number of files with at least one issue.
	FilesWithIssues int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasIssues reports whether any issues were found.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.IssuesTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// GlobalReport collects the per-file reports of analyzed files.
func (r *Result) GlobalReport() *report.GlobalReport {
	global := report.NewGlobalReport()
	for _, outcome := range r.Files {
		if outcome.Report != nil {
			global.Add(outcome.Report)
		}
	}
	return global
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}
	if outcome.Report == nil {
		return
	}

	r.Stats.FilesProcessed++
	issues := outcome.Report.TotalIssues()
	r.Stats.IssuesTotal += issues
	r.Stats.IssuesFixable += outcome.Report.TotalFixable()
	if issues > 0 {
		r.Stats.FilesWithIssues++
	}
}
