package runner

import "github.com/yaklabco/asmfmt/pkg/pipeline"

// FileOutcome is the result of processing one discovered file.
type FileOutcome struct {
	Path     string
	Language string

	// Result is nil when Error is set.
	Result *pipeline.Result

	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesFormatted  int
	FilesUnchanged  int
	FilesWouldFix   int
	FilesLintFailed int
	FilesSkipped    int
	FilesErrored    int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, in discovery order.
	Files []FileOutcome

	Stats Stats
}

// LintFailures returns the outcomes whose lint check failed.
func (r *Result) LintFailures() []FileOutcome {
	if r == nil {
		return nil
	}
	var failed []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Result != nil && outcome.Result.Status == pipeline.StatusLintFailed {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Errors returns the outcomes that could not be processed.
func (r *Result) Errors() []FileOutcome {
	if r == nil {
		return nil
	}
	var failed []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	switch outcome.Result.Status {
	case pipeline.StatusFormatted:
		r.Stats.FilesFormatted++
	case pipeline.StatusUnchanged:
		r.Stats.FilesUnchanged++
	case pipeline.StatusWouldChange:
		r.Stats.FilesWouldFix++
	case pipeline.StatusLintFailed:
		r.Stats.FilesLintFailed++
	case pipeline.StatusSkipped:
		r.Stats.FilesSkipped++
	}
}
