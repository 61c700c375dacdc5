// Package reporter writes the outcome of a formatting run.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/asmfmt/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of failing files (lint mismatches and errors)
	// and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// failures counts the files that make a run fail.
func failures(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.FilesLintFailed + result.Stats.FilesErrored
}
