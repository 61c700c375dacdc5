package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/yaklabco/asmfmt/internal/configloader"
	"github.com/yaklabco/asmfmt/pkg/fsutil"
	"github.com/yaklabco/asmfmt/pkg/pipeline"
)

// Exit codes for asmfmt.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitLintFailed indicates at least one file is not formatted.
	ExitLintFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrLintFailed is returned when lint mode finds files that are not formatted.
	ErrLintFailed = errors.New("lint failed")

	// ErrFilesFailed is returned when one or more files could not be processed.
	ErrFilesFailed = errors.New("files failed")

	// ErrInvalidUsage marks bad flags or arguments.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCodeFromError maps a command error to a process exit code.
// I/O failures take precedence over lint failures, since a file that could
// not be read was not checked either.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed), isIOError(err):
		return ExitIOError
	case errors.Is(err, ErrLintFailed):
		return ExitLintFailed
	default:
		return ExitInternalError
	}
}

func isIOError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pipeline.IsPipelineError(err) {
		return true
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
