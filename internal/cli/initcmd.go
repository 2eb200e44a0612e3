package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/logging"
	"github.com/quallab/rustqual/pkg/config"
	"github.com/quallab/rustqual/pkg/fsutil"
)

const configTemplateHeader = `# rustqual configuration.
# See 'rustqual analyzers' for the list of available analyzers.
`

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new rustqual configuration file",
		Long: `Create a .rustqual.yml configuration file in the current directory
with the default settings. Edit it to select analyzers, exclude paths,
and tune parallelism.

Examples:
  rustqual init                     # Create .rustqual.yml
  rustqual init --output custom.yml # Write to a custom file path
  rustqual init --force             # Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".rustqual.yml", "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	body, err := config.Default().ToYAML()
	if err != nil {
		return err
	}
	content := append([]byte(configTemplateHeader), body...)

	written, err := fsutil.WriteAtomicIfChanged(ctx, absPath, content, fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", flags.output)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already up to date\n", flags.output)
	}
	return nil
}
