package differ

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/analyzer/rules"
	"github.com/quallab/rustqual/pkg/rustast"
)

func allAnalyzers() []analyzer.Analyzer {
	registry := analyzer.NewRegistry()
	rules.RegisterAll(registry)
	return registry.Analyzers()
}

func parseSource(t *testing.T, src string) *rustast.SourceFile {
	t.Helper()
	file, err := rustast.Parse(context.Background(), "test.rs", []byte(src))
	require.NoError(t, err)
	t.Cleanup(file.Close)
	return file
}

func TestFromFilePathImportScenario(t *testing.T) {
	file := parseSource(t, "fn main() { let x = std::fs::read_to_string(\"f\"); }\n")

	diff, err := FromFile(context.Background(), file, allAnalyzers())
	require.NoError(t, err)
	require.Equal(t, 1, diff.TotalChanges())

	e := diff.Entries[0]
	assert.Equal(t, 1, e.Line)
	assert.Equal(t, "path_import", e.Analyzer)
	assert.Equal(t, "use std::fs::read_to_string;", e.Import)
	assert.Equal(t, "fn main() { let x = std::fs::read_to_string(\"f\"); }", e.Original)
	assert.Equal(t, "fn main() { let x = read_to_string(\"f\"); }", e.Modified)
}

func TestFromFileDoesNotMutate(t *testing.T) {
	src := "fn main() {\n    let x = std::fs::read_to_string(\"f\");\n\n    let y = 1;\n}\n"
	file := parseSource(t, src)

	_, err := FromFile(context.Background(), file, allAnalyzers())
	require.NoError(t, err)

	assert.Equal(t, src, file.Unparse())
}

func TestFromFileIsIdempotent(t *testing.T) {
	file := parseSource(t, "fn main() {\n    let a = 1;\n\n    let b = 2;\n}\n")

	first, err := FromFile(context.Background(), file, allAnalyzers())
	require.NoError(t, err)
	second, err := FromFile(context.Background(), file, allAnalyzers())
	require.NoError(t, err)

	assert.Equal(t, first.Entries, second.Entries)
}

func TestFromFileSkipsUnfixableIssues(t *testing.T) {
	file := parseSource(t, `fn main() {
    // positional soup below
    println!("{} {} {}", a, b, c);
}
`)

	diff, err := FromFile(context.Background(), file, allAnalyzers())
	require.NoError(t, err)

	// inline_comments and format_args both fire, neither carries a fix.
	assert.Equal(t, 0, diff.TotalChanges())
}

func TestFromFileSimpleFixPreview(t *testing.T) {
	file := parseSource(t, "fn main() {\n    let a = 1;\n\n    let b = 2;\n}\n")

	diff, err := FromFile(context.Background(), file, allAnalyzers())
	require.NoError(t, err)
	require.Equal(t, 1, diff.TotalChanges())

	e := diff.Entries[0]
	assert.Equal(t, "empty_lines", e.Analyzer)
	assert.Equal(t, 3, e.Line)
	assert.Equal(t, "", e.Original)
	assert.Equal(t, "", e.Modified)
	assert.Empty(t, e.Import)
}

func TestGenerateFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() { let x = std::fs::read_to_string(\"f\"); }\n"), 0o644))

	diff, err := Generate(context.Background(), path, allAnalyzers())
	require.NoError(t, err)
	assert.Equal(t, 1, diff.TotalChanges())
	assert.Equal(t, path, diff.Path)
}

func TestGenerateMissingFile(t *testing.T) {
	_, err := Generate(context.Background(), filepath.Join(t.TempDir(), "absent.rs"), allAnalyzers())
	assert.Error(t, err)
}

func TestGenerateParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() { invalid syntax +++\n"), 0o644))

	_, err := Generate(context.Background(), path, allAnalyzers())
	require.Error(t, err)
	assert.ErrorIs(t, err, rustast.ErrParse)
}
