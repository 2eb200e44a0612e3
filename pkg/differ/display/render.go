package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quallab/rustqual/internal/ui/pretty"
	"github.com/quallab/rustqual/pkg/differ"
)

const separatorWidth = 40

// RenderFileBlock renders one file's diff into a block for the grid:
//
//	File: path/to/file.rs
//	────────────────────────
//	Imports (file top)
//	+    use std::fs::read_to_string;
//
//	analyzer_name (2 issues)
//
//	Line 42
//	-    old code
//	+    new code
//
//	════════════════════════
//
// The block width is the widest visible line, floored at MinBlockWidth.
func RenderFileBlock(file *differ.FileDiff, styles *pretty.Styles) RenderedBlock {
	r := blockRenderer{styles: styles}

	r.header(file.Path)
	r.imports(file)
	r.issues(file)
	r.footer()

	if r.width < MinBlockWidth {
		r.width = MinBlockWidth
	}
	return RenderedBlock{Lines: r.lines, Width: r.width}
}

// blockRenderer accumulates styled lines and tracks the running max width.
type blockRenderer struct {
	styles *pretty.Styles
	lines  []string
	width  int
}

func (r *blockRenderer) push(style lipgloss.Style, text string) {
	if w := lipgloss.Width(text); w > r.width {
		r.width = w
	}
	r.lines = append(r.lines, style.Render(text))
}

func (r *blockRenderer) blank() {
	r.lines = append(r.lines, "")
}

func (r *blockRenderer) header(path string) {
	r.push(r.styles.FileHeader, fmt.Sprintf("File: %s", path))
	r.push(r.styles.Separator, strings.Repeat("─", separatorWidth))
}

func (r *blockRenderer) imports(file *differ.FileDiff) {
	imports := file.Imports()
	if len(imports) == 0 {
		return
	}

	r.push(r.styles.ImportHeader, "Imports (file top)")
	for _, imp := range GroupImports(imports) {
		r.push(r.styles.DiffAdd, fmt.Sprintf("+    %s", imp))
	}
	r.blank()
}

func (r *blockRenderer) issues(file *differ.FileDiff) {
	lastAnalyzer := ""

	for _, entry := range file.Entries {
		if entry.Analyzer != lastAnalyzer {
			if lastAnalyzer != "" {
				r.blank()
			}

			count := 0
			for _, e := range file.Entries {
				if e.Analyzer == entry.Analyzer {
					count++
				}
			}

			r.push(r.styles.Analyzer, fmt.Sprintf("%s (%d %s)", entry.Analyzer, count, pluralIssues(count)))
			r.blank()
			lastAnalyzer = entry.Analyzer
		}

		r.push(r.styles.LineNumber, fmt.Sprintf("Line %d", entry.Line))
		r.push(r.styles.DiffRemove, fmt.Sprintf("-    %s", entry.Original))
		r.push(r.styles.DiffAdd, fmt.Sprintf("+    %s", entry.Modified))
		r.blank()
	}
}

func (r *blockRenderer) footer() {
	r.push(r.styles.Separator, strings.Repeat("═", separatorWidth))
}

func pluralIssues(n int) string {
	if n == 1 {
		return "issue"
	}
	return "issues"
}
