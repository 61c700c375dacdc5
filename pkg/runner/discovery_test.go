package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (relative paths) under a fresh directory.
func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func relPaths(t *testing.T, root string, files []File) []string {
	t.Helper()

	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tree := map[string]string{
		"main.asm":              "NOP\n",
		"src/uart.inc":          "NOP\n",
		"src/UPPER.ASM":         "NOP\n",
		"src/notes.txt":         "text\n",
		"build/out.asm":         "NOP\n",
		"tools/gen.asm":         "NOP\n",
		"Silabs/sdk/start.asm":  "NOP\n",
		".git/hooks/x.asm":      "NOP\n",
		"src/.hidden.asm":       "NOP\n",
		"src/blob.asm":          "\x00\x01\x02",
		"vendor/third/part.asm": "NOP\n",
	}

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "default excludes",
			opts: Options{
				Extensions:  []string{"asm", "inc"},
				ExcludeDirs: []string{"build", "tools", "Silabs"},
			},
			want: []string{"main.asm", "src/UPPER.ASM", "src/uart.inc", "vendor/third/part.asm"},
		},
		{
			name: "extensions with dots",
			opts: Options{
				Extensions:  []string{".inc"},
				ExcludeDirs: []string{"build", "tools", "Silabs"},
			},
			want: []string{"src/uart.inc"},
		},
		{
			name: "no excluded directories",
			opts: Options{Extensions: []string{"asm"}},
			want: []string{
				"Silabs/sdk/start.asm", "build/out.asm", "main.asm",
				"src/UPPER.ASM", "tools/gen.asm", "vendor/third/part.asm",
			},
		},
		{
			name: "exclude globs",
			opts: Options{
				Extensions:   []string{"asm", "inc"},
				ExcludeDirs:  []string{"build", "tools", "Silabs"},
				ExcludeGlobs: []string{"*.inc", "vendor/**"},
			},
			want: []string{"main.asm", "src/UPPER.ASM"},
		},
		{
			name: "skip vendored",
			opts: Options{
				Extensions:   []string{"asm"},
				ExcludeDirs:  []string{"build", "tools", "Silabs"},
				SkipVendored: true,
			},
			want: []string{"main.asm", "src/UPPER.ASM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := makeTree(t, tree)
			opts := tt.opts
			opts.WorkingDir = root

			files, err := Discover(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, relPaths(t, root, files))
		})
	}
}

func TestDiscover_NamedPaths(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{
		"a.asm":       "NOP\n",
		"sub/b.asm":   "NOP\n",
		"build/c.asm": "NOP\n",
		"readme.md":   "# x\n",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir:  root,
		Paths:       []string{"sub", "a.asm", "sub/b.asm", "build/c.asm", "readme.md"},
		Extensions:  []string{"asm"},
		ExcludeDirs: []string{"build"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.asm", "sub/b.asm"}, relPaths(t, root, files))
	for _, f := range files {
		assert.True(t, filepath.IsAbs(f.Path))
		assert.NotEmpty(t, f.Language)
	}
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	_, err := Discover(context.Background(), Options{WorkingDir: root, Paths: []string{"missing"}})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Discover(ctx, Options{WorkingDir: root})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		rel     string
		want    bool
	}{
		{"*.inc", "lib/uart.inc", true},
		{"*.inc", "lib/uart.asm", false},
		{"lib", "lib/uart.asm", true},
		{"vendor/**", "vendor/a/b.asm", true},
		{"vendor/**", "src/vendor.asm", false},
		{"**/gen/*.asm", "a/b/gen/x.asm", true},
		{"**/gen/*.asm", "gen/x.asm", true},
		{"src/*.asm", "src/main.asm", true},
		{"src/*.asm", "other/src/main.asm", false},
		{"./build/", "build/out.asm", true},
		{"lib/**/*.inc", "lib/a/b/uart.inc", true},
		{"lib/**/*.inc", "lib/uart.inc", true},
		{"*.{inc,h}", "src/regs.h", true},
		{"gen?", "gen1/x.asm", true},
		{"", "main.asm", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.pattern, tt.rel), "matchGlob(%q, %q)", tt.pattern, tt.rel)
	}
}

func TestEffectiveExtensions(t *testing.T) {
	t.Parallel()

	opts := Options{Extensions: []string{"asm", ".INC", " ", ".s"}}
	assert.Equal(t, []string{".asm", ".inc", ".s"}, opts.effectiveExtensions())
	assert.Equal(t, []string{".asm", ".inc"}, Options{}.effectiveExtensions())
}
