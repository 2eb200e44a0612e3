// Package differ computes before/after previews of analyzer fixes without
// touching the analyzed file.
package differ

// DiffEntry is one previewed change: a single issue's fix rendered as
// original and modified line text.
type DiffEntry struct {
	// Line is the 1-based line the change applies to.
	Line int

	// Analyzer is the name of the analyzer that proposed the change.
	Analyzer string

	// Original is the current line text.
	Original string

	// Modified is the line text after the fix.
	Modified string

	// Description is the issue message.
	Description string

	// Import is the use declaration the fix would add, empty when the fix
	// carries none. It is rendered separately, never merged into Modified.
	Import string
}

// FileDiff collects all previewed changes for a single file.
type FileDiff struct {
	Path    string
	Entries []DiffEntry
}

// NewFileDiff creates an empty diff for a file.
func NewFileDiff(path string) *FileDiff {
	return &FileDiff{Path: path}
}

// AddEntry appends a previewed change.
func (d *FileDiff) AddEntry(entry DiffEntry) {
	d.Entries = append(d.Entries, entry)
}

// TotalChanges returns the number of previewed changes.
func (d *FileDiff) TotalChanges() int {
	return len(d.Entries)
}

// Imports returns the use declarations carried by the file's entries,
// in entry order.
func (d *FileDiff) Imports() []string {
	var imports []string
	for _, entry := range d.Entries {
		if entry.Import != "" {
			imports = append(imports, entry.Import)
		}
	}
	return imports
}

// DiffResult aggregates previewed changes across files.
type DiffResult struct {
	Files []FileDiff
}

// NewDiffResult creates an empty diff result.
func NewDiffResult() *DiffResult {
	return &DiffResult{}
}

// AddFile appends a file diff, dropping files with no changes.
func (r *DiffResult) AddFile(fileDiff FileDiff) {
	if fileDiff.TotalChanges() > 0 {
		r.Files = append(r.Files, fileDiff)
	}
}

// TotalChanges returns the number of previewed changes across all files.
func (r *DiffResult) TotalChanges() int {
	total := 0
	for _, f := range r.Files {
		total += f.TotalChanges()
	}
	return total
}

// TotalFiles returns the number of files with at least one change.
func (r *DiffResult) TotalFiles() int {
	return len(r.Files)
}
