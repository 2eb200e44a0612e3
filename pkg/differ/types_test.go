package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(line int) DiffEntry {
	return DiffEntry{
		Line:        line,
		Analyzer:    "test",
		Original:    "old",
		Modified:    "new",
		Description: "desc",
	}
}

func TestFileDiffAddEntry(t *testing.T) {
	d := NewFileDiff("test.rs")
	assert.Equal(t, 0, d.TotalChanges())

	d.AddEntry(entry(1))
	assert.Equal(t, 1, d.TotalChanges())
}

func TestFileDiffImports(t *testing.T) {
	d := NewFileDiff("test.rs")
	d.AddEntry(entry(1))

	withImport := entry(2)
	withImport.Import = "use std::fs::write;"
	d.AddEntry(withImport)

	assert.Equal(t, []string{"use std::fs::write;"}, d.Imports())
}

func TestDiffResultAddFile(t *testing.T) {
	r := NewDiffResult()

	d := NewFileDiff("test.rs")
	d.AddEntry(entry(1))
	r.AddFile(*d)

	assert.Equal(t, 1, r.TotalFiles())
	assert.Equal(t, 1, r.TotalChanges())
}

func TestDiffResultSkipsEmptyFiles(t *testing.T) {
	r := NewDiffResult()
	r.AddFile(*NewFileDiff("test.rs"))

	assert.Equal(t, 0, r.TotalFiles())
	assert.Equal(t, 0, r.TotalChanges())
}

func TestDiffResultMultipleFiles(t *testing.T) {
	r := NewDiffResult()

	for _, path := range []string{"file1.rs", "file2.rs"} {
		d := NewFileDiff(path)
		d.AddEntry(entry(1))
		r.AddFile(*d)
	}

	assert.Equal(t, 2, r.TotalFiles())
	assert.Equal(t, 2, r.TotalChanges())
}
