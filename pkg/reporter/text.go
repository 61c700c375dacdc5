package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/asmfmt/internal/ui/pretty"
	"github.com/yaklabco/asmfmt/pkg/pipeline"
	"github.com/yaklabco/asmfmt/pkg/runner"
)

// TextReporter writes one line per notable file and a one-line summary.
// Lint mismatches are reported as "Failed linting <path>".
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		r.writeOutcome(file)
	}

	switch {
	case r.opts.Stats:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	case r.opts.ShowSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failures(result), nil
}

func (r *TextReporter) writeOutcome(file runner.FileOutcome) {
	path := r.styles.FilePath.Render(displayPath(r.opts.WorkingDir, file.Path))

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
		return
	}
	if file.Result == nil {
		return
	}

	switch file.Result.Status {
	case pipeline.StatusLintFailed:
		fmt.Fprintln(r.bw, r.styles.Failure.Render("Failed linting")+" "+path)
	case pipeline.StatusWouldChange:
		fmt.Fprintln(r.bw, r.styles.Warning.Render("Would reformat")+" "+path)
	case pipeline.StatusFormatted:
		line := r.styles.Success.Render("Formatted") + " " + path
		if file.Result.OutputPath != file.Result.Path {
			line += r.styles.Dim.Render(" -> " + displayPath(r.opts.WorkingDir, file.Result.OutputPath))
		}
		fmt.Fprintln(r.bw, line)
	case pipeline.StatusSkipped:
		fmt.Fprintf(r.bw, "%s %s%s\n", r.styles.Warning.Render("Skipped"), path,
			r.styles.Dim.Render(": "+file.Result.SkipReason))
	case pipeline.StatusUnchanged:
		if r.opts.Verbose {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("Unchanged")+" "+path)
		}
	}
}
