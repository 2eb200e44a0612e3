// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldConfig     = "config"
	FieldWorkingDir = "working_dir"

	// Run fields.
	FieldAnalyzer  = "analyzer"
	FieldAnalyzers = "analyzers"
	FieldJobs      = "jobs"
	FieldDryRun    = "dry_run"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesSkipped    = "files_skipped"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesModified   = "files_modified"
	FieldFilesMoved      = "files_moved"
	FieldIssuesTotal     = "issues_total"
	FieldIssuesFixable   = "issues_fixable"
	FieldIssuesFixed     = "issues_fixed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
