// Package pipeline runs a single assembler source through the formatter and
// decides what reaches the disk: a rewritten source, a suffixed copy, a diff
// only, or, in lint mode, nothing at all.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/asmfmt/internal/logging"
	"github.com/yaklabco/asmfmt/pkg/config"
	"github.com/yaklabco/asmfmt/pkg/diff"
	"github.com/yaklabco/asmfmt/pkg/formatter"
	"github.com/yaklabco/asmfmt/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrReadFailure indicates the source could not be read.
	ErrReadFailure = errors.New("read failure")

	// ErrWriteFailure indicates formatted output could not be written.
	ErrWriteFailure = errors.New("write failure")
)

// Status is the outcome of processing one file.
type Status int

const (
	// StatusUnchanged means the file was already formatted.
	StatusUnchanged Status = iota
	// StatusFormatted means formatted output was written.
	StatusFormatted
	// StatusWouldChange means a dry run found differences and wrote nothing.
	StatusWouldChange
	// StatusLintFailed means lint mode found the file is not formatted.
	StatusLintFailed
	// StatusSkipped means the file changed on disk while it was processed.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusFormatted:
		return "formatted"
	case StatusWouldChange:
		return "would_change"
	case StatusLintFailed:
		return "lint_failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	for candidate := StatusUnchanged; candidate <= StatusSkipped; candidate++ {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// Result describes what happened to one file.
type Result struct {
	Path string

	// OutputPath is where formatted content was or would be written.
	OutputPath string

	Status Status

	// Diff holds the changes formatting makes. It is set for dry runs and
	// lint failures.
	Diff *diff.Unified

	Widths formatter.WidthTable
	Lines  int

	BackupCreated bool
	SkipReason    string
}

// Changed reports whether formatting altered, or would alter, the file.
func (r *Result) Changed() bool {
	switch r.Status {
	case StatusFormatted, StatusWouldChange, StatusLintFailed:
		return true
	default:
		return false
	}
}

// Options controls how results are written.
type Options struct {
	// Suffix, when set, sends output to path+Suffix and leaves the source alone.
	Suffix string

	// Lint checks instead of writing. The check goes through a scratch file
	// named path+LintSuffix which is always removed afterwards.
	Lint       bool
	LintSuffix string

	// LintDiff attaches a diff to lint failures. Text output only names
	// the failing file, so the diff is skipped unless a reporter shows it.
	LintDiff bool

	// DryRun computes a diff and writes nothing.
	DryRun bool

	Backup fsutil.BackupConfig
}

// OptionsFromConfig derives pipeline options from a configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Suffix:     cfg.Suffix,
		Lint:       cfg.Lint,
		LintSuffix: cfg.LintSuffix,
		LintDiff:   cfg.Format == config.FormatJSON || cfg.Format == config.FormatDiff,
		DryRun:     cfg.DryRun,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.Backups.Enabled,
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
	}
}

// Pipeline processes files with one Formatter.
type Pipeline struct {
	Formatter *formatter.Formatter
}

// New creates a Pipeline around f.
func New(f *formatter.Formatter) *Pipeline {
	return &Pipeline{Formatter: f}
}

// ProcessFile formats the file at path according to opts.
//
// In lint mode it delegates to Verify. Otherwise:
//  1. Read the source and snapshot it.
//  2. Format it in memory.
//  3. For a dry run, return the diff.
//  4. With a suffix, write path+suffix if its content differs.
//  5. In place, skip identical content, refuse to overwrite a file that
//     changed meanwhile, back up the source, and replace it atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if opts.Lint {
		return p.Verify(ctx, path, opts)
	}

	original, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	formatted := p.Formatter.Format(original)
	result := &Result{
		Path:       path,
		OutputPath: fsutil.OutputPath(path, opts.Suffix),
		Widths:     formatted.Widths,
		Lines:      formatted.Lines,
	}
	same := bytes.Equal(original, formatted.Content)

	if opts.DryRun {
		if !same {
			result.Status = StatusWouldChange
			result.Diff = diff.Compute(path, original, formatted.Content)
		}
		return result, nil
	}

	if opts.Suffix != "" {
		if _, err := fsutil.WriteIfChanged(ctx, result.OutputPath, formatted.Content, info.Mode); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		if !same {
			result.Status = StatusFormatted
		}
		return result, nil
	}

	if same {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	if modified {
		result.Status = StatusSkipped
		result.SkipReason = "file modified during processing"
		logging.FromContext(ctx).Warn("skipping file modified during processing")
		return result, nil
	}

	created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.BackupCreated = created
	if created {
		logging.FromContext(ctx).Debug("backup created",
			logging.FieldOutput, fsutil.BackupPath(path, opts.Backup.Mode))
	}

	if err := fsutil.WriteAtomic(ctx, path, formatted.Content, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Status = StatusFormatted
	return result, nil
}

// Verify checks that formatting path is a no-op. The formatted content is
// written to path+opts.LintSuffix, compared byte for byte with the source,
// and the scratch file is removed on every path out. A mismatch is reported
// through the result, not as an error, with a diff when opts.LintDiff is set.
func (p *Pipeline) Verify(ctx context.Context, path string, opts Options) (result *Result, err error) {
	lintSuffix := opts.LintSuffix
	if lintSuffix == "" {
		lintSuffix = config.DefaultLintSuffix
	}

	original, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	formatted := p.Formatter.Format(original)

	scratch, err := fsutil.WriteScratch(ctx, path, lintSuffix, formatted.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	defer func() {
		if removeErr := scratch.Remove(); removeErr != nil && err == nil {
			result, err = nil, fmt.Errorf("%w: %w", ErrWriteFailure, removeErr)
		}
	}()

	same, err := scratch.Matches(original)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	result = &Result{
		Path:       path,
		OutputPath: scratch.Path,
		Widths:     formatted.Widths,
		Lines:      formatted.Lines,
	}
	if !same {
		result.Status = StatusLintFailed
		if opts.LintDiff {
			result.Diff = diff.Compute(path, original, formatted.Content)
		}
	}
	return result, nil
}

// IsPipelineError reports whether err carries one of the pipeline sentinels.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrReadFailure) || errors.Is(err, ErrWriteFailure)
}
