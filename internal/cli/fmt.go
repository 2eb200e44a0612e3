package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/logging"
	"github.com/quallab/rustqual/pkg/formatter"
)

func newFmtCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [path]",
		Short: "Format the project with the rustqual rustfmt settings",
		Long: `Format the project with the rustqual rustfmt settings.

Runs cargo +nightly fmt with a fixed configuration passed on the
command line, so the project does not need its own .rustfmt.toml.
The nightly toolchain is required for rustfmt's unstable options.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}

			logging.Default().Debug("running cargo fmt", logging.FieldPath, dir)

			err := formatter.Format(commandContext(cmd), formatter.DefaultConfig(), formatter.Options{
				Dir:    dir,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Code formatted successfully")
			return nil
		},
	}
	return cmd
}
