package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/asmfmt/pkg/config"
	"github.com/yaklabco/asmfmt/pkg/formatter"
	"github.com/yaklabco/asmfmt/pkg/fsutil"
	"github.com/yaklabco/asmfmt/pkg/pipeline"
)

const (
	messySource     = "LBL: MOV A,B\n"
	formattedSource = "LBL:\n    MOV  A, B\n"
)

func newPipeline() *pipeline.Pipeline {
	return pipeline.New(formatter.New(formatter.DefaultOptions()))
}

func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.asm")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestProcessFile_InPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rewrites an unformatted file", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, messySource)

		result, err := newPipeline().ProcessFile(ctx, path, pipeline.Options{})
		require.NoError(t, err)
		assert.Equal(t, pipeline.StatusFormatted, result.Status)
		assert.True(t, result.Changed())
		assert.Equal(t, path, result.OutputPath)
		assert.Equal(t, 2, result.Lines)
		assert.Equal(t, formattedSource, readFile(t, path))
	})

	t.Run("leaves a formatted file alone", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, formattedSource)
		before, err := os.Stat(path)
		require.NoError(t, err)

		result, err := newPipeline().ProcessFile(ctx, path, pipeline.Options{})
		require.NoError(t, err)
		assert.Equal(t, pipeline.StatusUnchanged, result.Status)
		assert.False(t, result.Changed())

		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("creates a backup when enabled", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, messySource)
		opts := pipeline.Options{
			Backup: fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar},
		}

		result, err := newPipeline().ProcessFile(ctx, path, opts)
		require.NoError(t, err)
		assert.True(t, result.BackupCreated)
		assert.Equal(t, messySource, readFile(t, path+fsutil.BackupSuffix))
		assert.Equal(t, formattedSource, readFile(t, path))
	})

	t.Run("keeps the file mode", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, messySource)
		require.NoError(t, os.Chmod(path, 0o600))

		_, err := newPipeline().ProcessFile(ctx, path, pipeline.Options{})
		require.NoError(t, err)

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	})
}

func TestProcessFile_Suffix(t *testing.T) {
	t.Parallel()

	path := writeSource(t, messySource)

	result, err := newPipeline().ProcessFile(context.Background(), path, pipeline.Options{Suffix: ".fmt"})
	require.NoError(t, err)
	assert.Equal(t, pipeline.StatusFormatted, result.Status)
	assert.Equal(t, path+".fmt", result.OutputPath)
	assert.Equal(t, messySource, readFile(t, path))
	assert.Equal(t, formattedSource, readFile(t, path+".fmt"))
}

func TestProcessFile_DryRun(t *testing.T) {
	t.Parallel()

	path := writeSource(t, messySource)

	result, err := newPipeline().ProcessFile(context.Background(), path, pipeline.Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, pipeline.StatusWouldChange, result.Status)
	require.NotNil(t, result.Diff)
	assert.Contains(t, result.Diff.String(), "+    MOV  A, B\n")
	assert.Equal(t, messySource, readFile(t, path))
}

func TestProcessFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := newPipeline().ProcessFile(context.Background(), filepath.Join(t.TempDir(), "none.asm"), pipeline.Options{})
	require.ErrorIs(t, err, pipeline.ErrReadFailure)
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.True(t, pipeline.IsPipelineError(err))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("formatted file passes", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, formattedSource)

		result, err := newPipeline().Verify(ctx, path, pipeline.Options{LintSuffix: ".asmb", LintDiff: true})
		require.NoError(t, err)
		assert.Equal(t, pipeline.StatusUnchanged, result.Status)
		assert.Nil(t, result.Diff)
		assert.NoFileExists(t, path+".asmb")
	})

	t.Run("unformatted file fails with a diff", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, messySource)

		result, err := newPipeline().Verify(ctx, path, pipeline.Options{LintSuffix: ".asmb", LintDiff: true})
		require.NoError(t, err)
		assert.Equal(t, pipeline.StatusLintFailed, result.Status)
		require.NotNil(t, result.Diff)
		assert.Equal(t, 1, result.Diff.Removed)
		assert.Equal(t, messySource, readFile(t, path))
		assert.NoFileExists(t, path+".asmb")
	})

	t.Run("empty suffix uses the default", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, formattedSource)

		result, err := newPipeline().Verify(ctx, path, pipeline.Options{})
		require.NoError(t, err)
		assert.Equal(t, path+config.DefaultLintSuffix, result.OutputPath)
		assert.NoFileExists(t, result.OutputPath)
	})

	t.Run("diff skipped unless requested", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, messySource)

		result, err := newPipeline().Verify(ctx, path, pipeline.Options{})
		require.NoError(t, err)
		assert.Equal(t, pipeline.StatusLintFailed, result.Status)
		assert.Nil(t, result.Diff)
	})

	t.Run("lint option routes through verify", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, messySource)

		result, err := newPipeline().ProcessFile(ctx, path, pipeline.Options{Lint: true, LintSuffix: ".chk"})
		require.NoError(t, err)
		assert.Equal(t, pipeline.StatusLintFailed, result.Status)
		assert.Equal(t, messySource, readFile(t, path))
		assert.NoFileExists(t, path+".chk")
	})
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Lint = true
	cfg.Suffix = ".out"
	cfg.Backups.Enabled = true

	opts := pipeline.OptionsFromConfig(cfg)
	assert.True(t, opts.Lint)
	assert.Equal(t, ".out", opts.Suffix)
	assert.Equal(t, config.DefaultLintSuffix, opts.LintSuffix)
	assert.Equal(t, fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}, opts.Backup)
	assert.False(t, opts.LintDiff)

	for _, format := range []config.OutputFormat{config.FormatJSON, config.FormatDiff} {
		cfg.Format = format
		assert.True(t, pipeline.OptionsFromConfig(cfg).LintDiff, "format %s", format)
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	text, err := pipeline.StatusLintFailed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "lint_failed", string(text))
	assert.Equal(t, "unknown", pipeline.Status(99).String())
}

func TestStatus_UnmarshalText(t *testing.T) {
	t.Parallel()

	var status pipeline.Status
	require.NoError(t, status.UnmarshalText([]byte("would_change")))
	assert.Equal(t, pipeline.StatusWouldChange, status)
	require.Error(t, status.UnmarshalText([]byte("bogus")))
}
