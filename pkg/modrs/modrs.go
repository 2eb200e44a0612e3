// Package modrs detects mod.rs files and relocates them to the modern
// module layout, where a module file is named after its directory:
// src/utils/mod.rs becomes src/utils.rs.
package modrs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quallab/rustqual/pkg/fsutil"
)

// Move describes a mod.rs file and the path it should live at instead.
type Move struct {
	// Path is the mod.rs file.
	Path string

	// Suggested is the destination path, the parent directory name
	// with a .rs extension, one level up.
	Suggested string

	// Module is the module name derived from the parent directory.
	Module string
}

// Message returns the human-readable description of the move.
func (m Move) Message() string {
	return fmt.Sprintf("Use `%s.rs` instead of `%s/mod.rs` (modern module style)", m.Module, m.Module)
}

// Detect reports whether path names a mod.rs file and, if so, where its
// content should move. Paths without a named parent directory are not
// movable and return false.
func Detect(path string) (Move, bool) {
	if filepath.Base(path) != "mod.rs" {
		return Move{}, false
	}

	parent := filepath.Dir(path)
	module := filepath.Base(parent)
	if module == "." || module == string(filepath.Separator) {
		return Move{}, false
	}

	return Move{
		Path:      path,
		Suggested: filepath.Join(filepath.Dir(parent), module+".rs"),
		Module:    module,
	}, true
}

// Apply performs the move: the mod.rs content is written to the
// suggested path, the original file is removed, and the parent
// directory is removed when it becomes empty. Apply refuses to
// overwrite an existing destination file.
func Apply(ctx context.Context, m Move) error {
	if _, err := os.Stat(m.Suggested); err == nil {
		return fmt.Errorf("destination already exists: %s", m.Suggested)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", m.Suggested, err)
	}

	content, info, err := fsutil.ReadFile(ctx, m.Path)
	if err != nil {
		return err
	}

	if err := fsutil.WriteAtomic(ctx, m.Suggested, content, info.Mode); err != nil {
		return err
	}
	if err := os.Remove(m.Path); err != nil {
		return fmt.Errorf("remove %s: %w", m.Path, err)
	}

	parent := filepath.Dir(m.Path)
	empty, err := isEmptyDir(parent)
	if err != nil {
		return err
	}
	if empty {
		if err := os.Remove(parent); err != nil {
			return fmt.Errorf("remove %s: %w", parent, err)
		}
	}
	return nil
}

func isEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("read dir %s: %w", dir, err)
	}
	return len(entries) == 0, nil
}
