package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quallab/rustqual/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "main.rs")

	require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("fn main() {}\n"), 0600))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(content))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode())
}

func TestWriteAtomicOverwritePreservesMode(t *testing.T) {
	ctx := context.Background()
	path := writeFixture(t, "lib.rs", "old\n")

	require.NoError(t, os.Chmod(path, 0640))
	require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new\n"), 0640))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), stat.Mode())
}

func TestWriteAtomicDefaultMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.rs")
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, stat.Mode())
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rs")
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("fn main() {}\n"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "main.rs", entries[0].Name())
}

func TestWriteAtomicCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fsutil.WriteAtomic(ctx, filepath.Join(t.TempDir(), "x.rs"), []byte("x"), 0644)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteAtomicIfChanged(t *testing.T) {
	ctx := context.Background()
	path := writeFixture(t, "lib.rs", "same\n")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("same\n"), 0644)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("different\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "different\n", string(content))
}

func TestWriteAtomicIfChangedNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.rs")

	written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("fn main() {}\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written)
}
