package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/logging"
	"github.com/quallab/rustqual/internal/ui/pretty"
	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/fsutil"
	"github.com/quallab/rustqual/pkg/langdetect"
	"github.com/quallab/rustqual/pkg/modrs"
	"github.com/quallab/rustqual/pkg/runner"
	"github.com/quallab/rustqual/pkg/rustast"
)

type fixFlags struct {
	dryRun    bool
	analyzers []string
}

func newFixCommand() *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply automatic fixes to Rust files",
		Long: `Apply automatic fixes to Rust files.

Fixable issues are rewritten in place: qualified paths become use
declarations, blank lines inside function bodies are removed, and
mod.rs files are moved to the directory-named module layout.
Files are written atomically and are left untouched when a fix fails
or the file changed on disk while rustqual was running.

Examples:
  rustqual fix                         # Fix current directory
  rustqual fix src/main.rs             # Fix single file
  rustqual fix --dry-run               # Show fix counts without writing
  rustqual fix --analyzer empty_lines  # Apply one analyzer's fixes only`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report fixes without writing files")
	cmd.Flags().StringSliceVar(&flags.analyzers, "analyzer", nil, "apply only the named analyzers")

	return cmd
}

func runFix(cmd *cobra.Command, args []string, flags *fixFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	analyzers, err := selectAnalyzers(analyzerNames(flags.analyzers, cfg))
	if err != nil {
		return err
	}

	files, err := runner.Discover(ctx, runner.Options{
		Paths:        args,
		ExcludeGlobs: cfg.Exclude,
	})
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), out))

	moved := 0
	if analyzerSelected(analyzers, "mod_rs") {
		for i, path := range files {
			move, ok := modrs.Detect(path)
			if !ok {
				continue
			}
			if flags.dryRun {
				fmt.Fprintf(out, "Would move %s to %s\n", move.Path, move.Suggested)
				moved++
				continue
			}
			if err := modrs.Apply(ctx, move); err != nil {
				logger.Error("skipping file",
					logging.FieldPath, path,
					logging.FieldError, err,
				)
				continue
			}
			// Later passes must see the file at its new location.
			files[i] = move.Suggested
			moved++
			fmt.Fprintf(out, "Moved %s to %s\n", move.Path, move.Suggested)
		}
	}

	totalFixed := 0
	filesModified := 0

	for _, path := range files {
		fixed, written, err := fixFile(ctx, path, analyzers, flags.dryRun)
		if err != nil {
			logger.Error("skipping file",
				logging.FieldPath, path,
				logging.FieldError, err,
			)
			continue
		}
		if fixed == 0 {
			continue
		}

		totalFixed += fixed
		if flags.dryRun {
			fmt.Fprintf(out, "Would fix %d %s in %s\n", fixed, pluralIssues(fixed), path)
			continue
		}
		if written {
			filesModified++
			fmt.Fprintf(out, "Fixed %d %s in %s\n", fixed, pluralIssues(fixed), path)
		}
	}

	switch {
	case totalFixed == 0 && moved == 0:
		fmt.Fprintln(out, styles.Success.Render("Nothing to fix"))
	case flags.dryRun:
		if moved > 0 {
			fmt.Fprintln(out, styles.Warning.Render(
				fmt.Sprintf("Would move %d mod.rs %s", moved, pluralFiles(moved))))
		}
		if totalFixed > 0 {
			fmt.Fprintln(out, styles.Warning.Render(
				fmt.Sprintf("Would fix %d %s (dry run, nothing written)", totalFixed, pluralIssues(totalFixed))))
		}
	default:
		if moved > 0 {
			fmt.Fprintln(out, styles.Success.Render(
				fmt.Sprintf("Moved %d mod.rs %s", moved, pluralFiles(moved))))
		}
		if totalFixed > 0 {
			fmt.Fprintln(out, styles.Success.Render(
				fmt.Sprintf("Fixed %d %s in %d %s", totalFixed, pluralIssues(totalFixed), filesModified, pluralFiles(filesModified))))
		}
	}

	logger.Debug("fix finished",
		logging.FieldFiles, len(files),
		logging.FieldIssuesFixed, totalFixed,
		logging.FieldFilesModified, filesModified,
		logging.FieldFilesMoved, moved,
		logging.FieldDryRun, flags.dryRun,
	)
	return nil
}

// fixFile applies every selected analyzer's fixes to one file and
// writes the result back atomically. The write is skipped when the file
// changed on disk after it was read.
func fixFile(ctx context.Context, path string, analyzers []analyzer.Analyzer, dryRun bool) (int, bool, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return 0, false, err
	}
	if !langdetect.IsRust(path, content) {
		return 0, false, nil
	}

	file, err := rustast.Parse(ctx, path, content)
	if err != nil {
		return 0, false, err
	}
	defer file.Close()

	fixed := 0
	for _, a := range analyzers {
		n, err := a.Fix(ctx, file)
		if err != nil {
			return fixed, false, fmt.Errorf("analyzer %s: %w", a.Name(), err)
		}
		fixed += n
	}

	if fixed == 0 || dryRun {
		return fixed, false, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return fixed, false, err
	}
	if modified {
		return fixed, false, fmt.Errorf("file changed on disk since it was read: %s", path)
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(file.Unparse()), info.Mode); err != nil {
		return fixed, false, err
	}
	return fixed, true, nil
}

func pluralIssues(n int) string {
	if n == 1 {
		return "issue"
	}
	return "issues"
}

func pluralFiles(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
