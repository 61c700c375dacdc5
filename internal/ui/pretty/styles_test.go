package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/asmfmt/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
	assert.Equal(t, text, styles.DiffAdd.Render(text))
}

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may drop ANSI codes in non-TTY environments, so only check
	// that every style still renders its text.
	for name, style := range map[string]func(...string) string{
		"Error":       styles.Error.Render,
		"Warning":     styles.Warning.Render,
		"FilePath":    styles.FilePath.Render,
		"DiffHeader":  styles.DiffHeader.Render,
		"DiffHunk":    styles.DiffHunk.Render,
		"DiffAdd":     styles.DiffAdd.Render,
		"DiffRemove":  styles.DiffRemove.Render,
		"DiffContext": styles.DiffContext.Render,
		"Success":     styles.Success.Render,
		"Failure":     styles.Failure.Render,
		"Dim":         styles.Dim.Render,
	} {
		assert.Contains(t, style("x"), "x", name)
	}
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode behaves like auto")
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
	assert.True(t, pretty.IsColorEnabled("always", os.Stdout))
}
