package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// configFileNames are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".rustqual.yml",
	".rustqual.yaml",
	"rustqual.yml",
	"rustqual.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Discover searches upward from startDir for a project config file.
// It returns the path of the first file found, or empty string if none.
// The search stops at a VCS root, the home directory, or the filesystem
// root. An empty startDir means the current working directory.
func Discover(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		homeDir = ""
	}

	currentDir := absDir
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("config discovery cancelled: %w", err)
		}

		for _, name := range configFileNames {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(currentDir) {
			return "", nil
		}
		if homeDir != "" && currentDir == homeDir {
			return "", nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", nil
		}
		currentDir = parent
	}
}

// Resolve loads the effective configuration. An explicit path wins over
// discovery; when neither yields a file the defaults are returned. The
// returned string is the path of the loaded file, empty for defaults.
// RUSTQUAL_* environment variables override file values.
func Resolve(ctx context.Context, explicit, workDir string) (*Config, string, error) {
	cfg, loadedFrom, err := resolveFile(ctx, explicit, workDir)
	if err != nil {
		return nil, "", err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, loadedFrom, nil
}

// resolveFile picks and loads the config file, or defaults when none.
func resolveFile(ctx context.Context, explicit, workDir string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicit, nil
	}

	path, err := Discover(ctx, workDir)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
