package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/ui/pretty"
	"github.com/quallab/rustqual/pkg/analyzer"
)

func newAnalyzersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyzers",
		Short: "List the available analyzers",
		Long:  `List every registered analyzer with a short description of what it checks.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			color, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(color, out))

			for _, a := range analyzer.DefaultRegistry.Analyzers() {
				fmt.Fprintf(out, "%s\n    %s\n",
					styles.Analyzer.Render(a.Name()),
					styles.Dim.Render(a.Description()),
				)
			}
		},
	}
}
