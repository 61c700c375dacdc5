// Package runner discovers assembler sources and formats them concurrently.
package runner

import (
	"strings"

	"github.com/yaklabco/asmfmt/pkg/config"
	"github.com/yaklabco/asmfmt/pkg/pipeline"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process directory.
	WorkingDir string

	// Extensions are the eligible file suffixes, with or without a leading
	// dot. Empty means the configured defaults.
	Extensions []string

	// ExcludeDirs are directory names pruned wherever they occur.
	ExcludeDirs []string

	// ExcludeGlobs are glob patterns, relative to WorkingDir, for files or
	// directories to skip.
	ExcludeGlobs []string

	// SkipVendored skips files under conventional third-party directories.
	SkipVendored bool

	// Jobs bounds the number of files processed at once. 0 or negative
	// means runtime.NumCPU().
	Jobs int

	// Pipeline controls what happens to each file.
	Pipeline pipeline.Options
}

// OptionsFromConfig builds run options for paths from a configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	return Options{
		Paths:        paths,
		Extensions:   cfg.Extensions,
		ExcludeDirs:  cfg.Exclude,
		ExcludeGlobs: cfg.Ignore,
		SkipVendored: cfg.SkipVendored,
		Jobs:         cfg.Jobs,
		Pipeline:     pipeline.OptionsFromConfig(cfg),
	}
}

// effectiveExtensions returns lowercase extensions with a leading dot.
func (o Options) effectiveExtensions() []string {
	source := o.Extensions
	if len(source) == 0 {
		source = config.NewConfig().Extensions
	}

	exts := make([]string, 0, len(source))
	for _, ext := range source {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
