package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/logging"
	"github.com/quallab/rustqual/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rustqual command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rustqual",
		Short: "Source-level quality linting for Rust code",
		Long: `rustqual is a quality linter for Rust source code.

It parses Rust files with tree-sitter and runs a set of analyzers that
catch style issues rustfmt and clippy leave alone: qualified paths that
should be imports, positional format arguments, blank lines inside
function bodies, and inline comments. Fixable issues can be previewed
as a diff and applied in place.

Configuration is read from .rustqual.yml, discovered upward from the
working directory.` + envVarHelp(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newDiffCommand())
	rootCmd.AddCommand(newAnalyzersCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// envVarHelp renders the supported environment variables for help output.
func envVarHelp() string {
	vars := config.ListEnvVars()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\n\nEnvironment variables:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-20s %s\n", name, vars[name])
	}
	return strings.TrimRight(b.String(), "\n")
}
