package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/logging"
	"github.com/quallab/rustqual/pkg/differ"
	"github.com/quallab/rustqual/pkg/differ/display"
	"github.com/quallab/rustqual/pkg/fsutil"
	"github.com/quallab/rustqual/pkg/runner"
	"github.com/quallab/rustqual/pkg/rustast"
)

type diffFlags struct {
	summary     bool
	interactive bool
	analyzers   []string
}

func newDiffCommand() *cobra.Command {
	flags := &diffFlags{}

	cmd := &cobra.Command{
		Use:   "diff [paths...]",
		Short: "Preview fixes as a diff without changing files",
		Long: `Preview fixes as a diff without changing files.

Shows the exact before and after text every fix would produce. Imports
recommended by multiple fixes are deduplicated and grouped into compact
use declarations. Files on disk are never modified except in
interactive mode, where accepted changes are applied.

Examples:
  rustqual diff                        # Full diff in a responsive grid
  rustqual diff --summary              # Per-file issue counts only
  rustqual diff --interactive          # Accept or reject each change
  rustqual diff --analyzer path_import # Preview one analyzer's fixes`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.summary, "summary", false, "show per-file issue counts only")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "accept or reject each change")
	cmd.Flags().StringSliceVar(&flags.analyzers, "analyzer", nil, "preview only the named analyzers")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string, flags *diffFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

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
		return fmt.Errorf("diff: %w", err)
	}

	result := differ.NewDiffResult()
	for _, path := range files {
		fileDiff, err := differ.Generate(ctx, path, analyzers)
		if err != nil {
			logger.Error("skipping file",
				logging.FieldPath, path,
				logging.FieldError, err,
			)
			continue
		}
		result.AddFile(*fileDiff)
	}

	out := cmd.OutOrStdout()
	if result.TotalChanges() == 0 {
		fmt.Fprintln(out, "No changes proposed")
		return nil
	}

	presenter := display.NewPresenter(display.Options{
		Writer: out,
		Input:  cmd.InOrStdin(),
		Color:  colorMode(cmd, cfg),
	})

	switch {
	case flags.summary:
		presenter.ShowSummary(result)
	case flags.interactive:
		selected, err := presenter.ShowInteractive(result)
		if err != nil {
			return fmt.Errorf("interactive diff: %w", err)
		}
		return applySelected(ctx, cmd, result, selected)
	default:
		presenter.ShowFull(result)
	}
	return nil
}

// applySelected writes interactively accepted changes back to their
// files. Line edits are applied bottom-up so earlier entries keep their
// anchors; accepted imports are inserted at the top at the end.
func applySelected(ctx context.Context, cmd *cobra.Command, result *differ.DiffResult, selected []differ.DiffEntry) error {
	if len(selected) == 0 {
		return nil
	}
	out := cmd.OutOrStdout()

	// Selected entries keep presentation order, which walks files and
	// entries in result order; match them back positionally.
	idx := 0

	applied := 0
	for _, fileDiff := range result.Files {
		entries := make([]differ.DiffEntry, 0, len(fileDiff.Entries))
		for _, entry := range fileDiff.Entries {
			if idx < len(selected) && entry == selected[idx] {
				entries = append(entries, entry)
				idx++
			}
		}
		if len(entries) == 0 {
			continue
		}

		n, err := applyFileEntries(ctx, fileDiff.Path, entries)
		if err != nil {
			return fmt.Errorf("apply changes to %s: %w", fileDiff.Path, err)
		}
		applied += n
	}

	fmt.Fprintf(out, "Applied %d %s\n", applied, pluralChanges(applied))
	return nil
}

func applyFileEntries(ctx context.Context, path string, entries []differ.DiffEntry) (int, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return 0, err
	}

	file, err := rustast.Parse(ctx, path, content)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Line > entries[j].Line })

	var imports []string
	for _, entry := range entries {
		if entry.Modified == "" && entry.Import == "" {
			if err := file.RemoveLine(entry.Line); err != nil {
				return 0, err
			}
		} else if err := file.ReplaceLine(entry.Line, entry.Modified); err != nil {
			return 0, err
		}
		if entry.Import != "" {
			imports = append(imports, entry.Import)
		}
	}

	for i := len(imports) - 1; i >= 0; i-- {
		if !fileHasLine(file, imports[i]) {
			if err := file.InsertLines(1, imports[i]); err != nil {
				return 0, err
			}
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(file.Unparse()), info.Mode); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func fileHasLine(file *rustast.SourceFile, want string) bool {
	want = strings.TrimSpace(want)
	for n := 1; n <= file.LineCount(); n++ {
		line, _ := file.Line(n)
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}

func pluralChanges(n int) string {
	if n == 1 {
		return "change"
	}
	return "changes"
}
