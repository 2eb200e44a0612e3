package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quallab/rustqual/internal/logging"
	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/config"
)

// ErrUnknownAnalyzer is returned when an analyzer name from the CLI or
// config does not match any registered analyzer.
var ErrUnknownAnalyzer = errors.New("unknown analyzer")

// loadConfig resolves the effective configuration for a command: the
// --config flag wins, otherwise discovery walks upward from the working
// directory, otherwise defaults.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, loadedFrom, err := config.Resolve(ctx, configPath, workDir)
	if err != nil {
		return nil, err
	}
	if loadedFrom != "" {
		logging.Default().Debug("loaded configuration", logging.FieldConfig, loadedFrom)
	}
	return cfg, nil
}

// selectAnalyzers resolves analyzer names against the default registry.
// Empty names means every registered analyzer.
func selectAnalyzers(names []string) ([]analyzer.Analyzer, error) {
	registry := analyzer.DefaultRegistry
	if len(names) == 0 {
		return registry.Analyzers(), nil
	}

	selected := make([]analyzer.Analyzer, 0, len(names))
	for _, name := range names {
		a, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s (available: %s)",
				ErrUnknownAnalyzer, name, strings.Join(registry.Names(), ", "))
		}
		selected = append(selected, a)
	}
	return selected, nil
}

// analyzerSelected reports whether the named analyzer is in the
// selected set.
func analyzerSelected(analyzers []analyzer.Analyzer, name string) bool {
	for _, a := range analyzers {
		if a.Name() == name {
			return true
		}
	}
	return false
}

// analyzerNames merges the --analyzer flag with the config file list.
// The flag wins when both are set.
func analyzerNames(flagNames []string, cfg *config.Config) []string {
	if len(flagNames) > 0 {
		return flagNames
	}
	return cfg.Analyzers
}

// colorMode picks the effective color setting: explicit --color flag,
// then config file, then auto.
func colorMode(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("color") {
		if v, err := cmd.Flags().GetString("color"); err == nil {
			return v
		}
	}
	if cfg.Color != "" {
		return cfg.Color
	}
	return "auto"
}

// jobCount picks the effective worker count: explicit --jobs flag, then
// config file, then auto.
func jobCount(cmd *cobra.Command, flagJobs int, cfg *config.Config) int {
	if cmd.Flags().Changed("jobs") {
		return flagJobs
	}
	return cfg.Jobs
}

// commandContext returns the command's context, falling back to
// context.Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
