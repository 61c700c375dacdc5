package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/asmfmt/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates a new file with the default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.asm")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("NOP\n"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "NOP\n", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
	})

	t.Run("replaces content and applies mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.asm")
		writeFile(t, path, "old\n")

		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new\n"), 0o600))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fsutil.WriteAtomic(ctx, filepath.Join(dir, "a.asm"), []byte("x"), 0))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.asm", entries[0].Name())
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "a.asm")
		require.Error(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := fsutil.WriteAtomic(canceled, filepath.Join(t.TempDir(), "a.asm"), []byte("x"), 0)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWriteIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("same content is not written", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.asm")
		writeFile(t, path, "NOP\n")

		written, err := fsutil.WriteIfChanged(ctx, path, []byte("NOP\n"), 0)
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("different content is written", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.asm")
		writeFile(t, path, "NOP\n")

		written, err := fsutil.WriteIfChanged(ctx, path, []byte("    NOP\n"), 0)
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "    NOP\n", string(got))
	})

	t.Run("missing file is created", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.asm.out")

		written, err := fsutil.WriteIfChanged(ctx, path, []byte("NOP\n"), 0)
		require.NoError(t, err)
		assert.True(t, written)
		assert.FileExists(t, path)
	})
}
