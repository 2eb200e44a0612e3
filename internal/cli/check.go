package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/logging"
	"github.com/quallab/rustqual/pkg/config"
	"github.com/quallab/rustqual/pkg/report"
	"github.com/quallab/rustqual/pkg/runner"

	_ "github.com/quallab/rustqual/pkg/analyzer/rules" // Register built-in analyzers
)

// ErrIssuesFound is returned when check finds quality issues. It signals
// the exit code; it is not logged as a failure.
var ErrIssuesFound = errors.New("quality issues found")

type checkFlags struct {
	verbose   bool
	analyzers []string
	jobs      int
	format    string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Rust files for quality issues",
		Long: `Check Rust files for quality issues.

By default, checks all .rs files in the current directory and
subdirectories, skipping target/ and hidden directories. Specify paths
to check specific files or directories.

Examples:
  rustqual check                       # Check current directory
  rustqual check src/                  # Check src directory
  rustqual check src/main.rs           # Check single file
  rustqual check --verbose             # Include clean files in the report
  rustqual check --analyzer path_import  # Run one analyzer only`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "report clean files too")
	cmd.Flags().StringSliceVar(&flags.analyzers, "analyzer", nil, "run only the named analyzers")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format (text, json, sarif)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	analyzers, err := selectAnalyzers(analyzerNames(flags.analyzers, cfg))
	if err != nil {
		return err
	}

	result, err := runner.New(analyzers).Run(ctx, runner.Options{
		Paths:        args,
		ExcludeGlobs: cfg.Exclude,
		Jobs:         jobCount(cmd, flags.jobs, cfg),
	})
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("skipping file",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
		}
	}

	logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldIssuesTotal, result.Stats.IssuesTotal,
	)

	if err := writeGlobal(cmd, cfg, flags, format, result.GlobalReport()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if result.HasIssues() {
		return ErrIssuesFound
	}
	return nil
}

// writeGlobal renders the run in the selected output format.
func writeGlobal(cmd *cobra.Command, cfg *config.Config, flags *checkFlags, format report.Format, global *report.GlobalReport) error {
	opts := report.Options{Writer: cmd.OutOrStdout()}

	switch format {
	case report.FormatJSON:
		return report.NewJSONWriter(opts).WriteGlobal(global)
	case report.FormatSARIF:
		return report.NewSARIFWriter(opts).WriteGlobal(global)
	default:
		opts.Color = colorMode(cmd, cfg)
		opts.Verbose = flags.verbose
		return report.NewWriter(opts).WriteGlobal(global)
	}
}
