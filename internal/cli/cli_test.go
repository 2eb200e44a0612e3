package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/config"
	"github.com/quallab/rustqual/pkg/report"
)

const cleanSource = `fn main() {
    let answer = 42;
}
`

const dirtySource = `fn main() {
    let a = 1;

    let b = 2;
}
`

// executeCommand runs the root command with the given arguments and
// returns everything written to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(BuildInfo{Version: "test"})
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeRustFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand(BuildInfo{Version: "test"})

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"init", "check", "fix", "diff", "analyzers", "fmt", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestInitCreatesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".rustqual.yml")

	out, err := executeCommand(t, "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".rustqual.yml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: 3\n"), 0644))

	_, err := executeCommand(t, "init", "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cfg, loadErr := config.Load(path)
	require.NoError(t, loadErr)
	assert.Equal(t, 3, cfg.Jobs)
}

func TestCheckCleanFile(t *testing.T) {
	dir := t.TempDir()
	writeRustFile(t, dir, "main.rs", cleanSource)

	out, err := executeCommand(t, "check", "--color", "never", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All files passed!")
}

func TestCheckFindsIssues(t *testing.T) {
	dir := t.TempDir()
	writeRustFile(t, dir, "main.rs", dirtySource)

	out, err := executeCommand(t, "check", "--color", "never", dir)
	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out, "[empty_lines]")
	assert.Contains(t, out, "Fix: Remove line")
}

func TestCheckJSONFormat(t *testing.T) {
	dir := t.TempDir()
	writeRustFile(t, dir, "main.rs", dirtySource)

	out, err := executeCommand(t, "check", "--format", "json", dir)
	assert.ErrorIs(t, err, ErrIssuesFound)

	var output report.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, 1, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.ByAnalyzer["empty_lines"])
}

func TestCheckSARIFFormat(t *testing.T) {
	dir := t.TempDir()
	writeRustFile(t, dir, "main.rs", dirtySource)

	out, err := executeCommand(t, "check", "--format", "sarif", dir)
	assert.ErrorIs(t, err, ErrIssuesFound)

	var output report.SARIFOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	require.Len(t, output.Runs, 1)
	assert.Equal(t, "rustqual", output.Runs[0].Tool.Driver.Name)
	assert.Len(t, output.Runs[0].Results, 1)
}

func TestCheckUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "check", "--format", "xml", t.TempDir())
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestCheckUnknownAnalyzer(t *testing.T) {
	_, err := executeCommand(t, "check", "--analyzer", "nonexistent", t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownAnalyzer)
}

func TestFixAppliesFixes(t *testing.T) {
	dir := t.TempDir()
	path := writeRustFile(t, dir, "main.rs", dirtySource)

	out, err := executeCommand(t, "fix", "--color", "never", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed 1 issue")

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.NotContains(t, string(content), "\n\n    let b")
}

func TestFixDryRunLeavesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeRustFile(t, dir, "main.rs", dirtySource)

	out, err := executeCommand(t, "fix", "--color", "never", "--dry-run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Would fix 1 issue")

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, dirtySource, string(content))
}

func TestFixCleanFile(t *testing.T) {
	dir := t.TempDir()
	writeRustFile(t, dir, "main.rs", cleanSource)

	out, err := executeCommand(t, "fix", "--color", "never", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to fix")
}

func TestAnalyzersListsRegistered(t *testing.T) {
	out, err := executeCommand(t, "analyzers", "--color", "never")
	require.NoError(t, err)
	for _, name := range []string{"path_import", "format_args", "empty_lines", "inline_comments", "mod_rs"} {
		assert.Contains(t, out, name)
	}
}

func TestRootHelpSections(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "quality linter for Rust")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "Flags:")
	assert.Contains(t, out, `Run "rustqual [command] --help"`)
}

func TestSubcommandHelpShowsGlobalFlags(t *testing.T) {
	out, err := executeCommand(t, "check", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--format")
	assert.Contains(t, out, "Global Flags:")
	assert.Contains(t, out, "--color")
}

func TestCheckReportsModRs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "utils")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeRustFile(t, sub, "mod.rs", "pub fn helper() {}\n")

	out, err := executeCommand(t, "check", "--color", "never", dir)
	require.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out, "[mod_rs]")
	assert.Contains(t, out, "Use `utils.rs` instead of `utils/mod.rs`")
}

func TestFixMovesModRs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "utils")
	require.NoError(t, os.Mkdir(sub, 0755))
	modPath := writeRustFile(t, sub, "mod.rs", "pub fn helper() {}\n")

	out, err := executeCommand(t, "fix", "--color", "never", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Moved 1 mod.rs file")

	assert.NoFileExists(t, modPath)
	assert.NoDirExists(t, sub)
	content, err := os.ReadFile(filepath.Join(dir, "utils.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub fn helper() {}\n", string(content))
}

func TestFixDryRunKeepsModRs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "utils")
	require.NoError(t, os.Mkdir(sub, 0755))
	modPath := writeRustFile(t, sub, "mod.rs", "pub fn helper() {}\n")

	out, err := executeCommand(t, "fix", "--color", "never", "--dry-run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Would move")
	assert.Contains(t, out, "Would move 1 mod.rs file")

	assert.FileExists(t, modPath)
	assert.NoFileExists(t, filepath.Join(dir, "utils.rs"))
}

func TestFixModRsRespectsAnalyzerFilter(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "utils")
	require.NoError(t, os.Mkdir(sub, 0755))
	modPath := writeRustFile(t, sub, "mod.rs", "pub fn helper() {}\n")

	out, err := executeCommand(t, "fix", "--color", "never", "--analyzer", "empty_lines", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to fix")
	assert.FileExists(t, modPath)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"issues found", ErrIssuesFound, ExitIssuesFound},
		{"unknown analyzer", ErrUnknownAnalyzer, ExitConfigError},
		{"invalid config", config.ErrInvalidConfig, ExitConfigError},
		{"unknown format", report.ErrUnknownFormat, ExitConfigError},
		{"internal", errors.New("boom"), ExitInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestEnvVarHelpListsVariables(t *testing.T) {
	help := envVarHelp()
	assert.Contains(t, help, "RUSTQUAL_JOBS")
	assert.Contains(t, help, "RUSTQUAL_COLOR")
}
