// Package main is the entry point for the rustqual CLI.
package main

import (
	"errors"
	"os"

	"github.com/quallab/rustqual/internal/cli"
	"github.com/quallab/rustqual/internal/logging"

	// Import rules package to register built-in analyzers via init().
	_ "github.com/quallab/rustqual/pkg/analyzer/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrIssuesFound is just a signal for the exit code.
		if !errors.Is(err, cli.ErrIssuesFound) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
