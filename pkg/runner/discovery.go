package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirNames are directory names never descended into. Cargo build
// output lives under target/.
//
//nolint:gochecknoglobals // Read-only lookup table.
var skipDirNames = []string{"target", "node_modules"}

// Discover finds Rust source files matching opts. It returns a
// deterministically sorted list of absolute file paths with duplicates
// removed. Explicitly named files bypass the extension check only if
// they exist; directories are walked recursively.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
			continue
		}

		if matchesFile(absPath, workDir, opts) {
			if _, ok := seen[absPath]; !ok {
				seen[absPath] = struct{}{}
				files = append(files, absPath)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks root and returns matching Rust files.
func walkDirectory(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(entry.Name(), ".") || isSkippedDir(entry.Name()) {
				return filepath.SkipDir
			}
			if matchesAnyGlob(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		// Broken symlinks stat to nothing; skip them silently.
		if entry.Type()&fs.ModeSymlink != 0 {
			if _, statErr := os.Stat(path); statErr != nil {
				return nil //nolint:nilerr // Intentionally skip broken symlinks
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if matchesFile(path, workDir, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func isSkippedDir(name string) bool {
	for _, skip := range skipDirNames {
		if name == skip {
			return true
		}
	}
	return false
}

// matchesFile checks extension and exclusion criteria for a single file.
func matchesFile(path, workDir string, opts Options) bool {
	if !strings.EqualFold(filepath.Ext(path), rustExtension) {
		return false
	}

	relPath, err := filepath.Rel(workDir, path)
	if err != nil {
		relPath = path
	}
	return !matchesAnyGlob(relPath, opts.ExcludeGlobs)
}

func matchesAnyGlob(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-normalized path against a glob pattern,
// with ** for recursive matching.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStarPattern(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStarPattern handles the common ** shapes: "**/foo",
// "foo/**", and "foo/**/bar".
func matchDoubleStarPattern(path, pattern string) bool {
	parts := strings.Split(pattern, "**")

	if parts[0] == "" && len(parts) == 2 {
		suffix := strings.TrimPrefix(parts[1], "/")
		if suffix == "" {
			return true
		}
		if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
			return true
		}
		for _, component := range strings.Split(path, "/") {
			if matched, err := filepath.Match(suffix, component); err == nil && matched {
				return true
			}
		}
		return false
	}

	if parts[1] == "" || parts[1] == "/" {
		prefix := strings.TrimSuffix(parts[0], "/")
		if prefix == "" {
			return true
		}
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")
	if prefix != "" && !strings.HasPrefix(path, prefix) {
		return false
	}
	if suffix != "" && !strings.HasSuffix(path, suffix) {
		matched, err := filepath.Match(suffix, filepath.Base(path))
		return err == nil && matched
	}
	return true
}
