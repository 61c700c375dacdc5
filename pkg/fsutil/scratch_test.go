package fsutil_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/asmfmt/pkg/fsutil"
)

func TestScratch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("write compare remove", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "main.asm")
		writeFile(t, path, "    NOP\n")

		scratch, err := fsutil.WriteScratch(ctx, path, ".asmb", []byte("    NOP\n"))
		require.NoError(t, err)
		assert.Equal(t, path+".asmb", scratch.Path)
		assert.FileExists(t, scratch.Path)

		same, err := scratch.Matches([]byte("    NOP\n"))
		require.NoError(t, err)
		assert.True(t, same)

		same, err = scratch.Matches([]byte("NOP\n"))
		require.NoError(t, err)
		assert.False(t, same)

		require.NoError(t, scratch.Remove())
		assert.NoFileExists(t, scratch.Path)
		require.NoError(t, scratch.Remove())
	})

	t.Run("empty suffix refused", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.WriteScratch(ctx, filepath.Join(t.TempDir(), "main.asm"), "", nil)
		require.Error(t, err)
	})

	t.Run("nil scratch removes nothing", func(t *testing.T) {
		t.Parallel()

		var scratch *fsutil.Scratch
		require.NoError(t, scratch.Remove())
	})
}
