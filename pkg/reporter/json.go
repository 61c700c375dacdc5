package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/asmfmt/pkg/pipeline"
	"github.com/yaklabco/asmfmt/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's result.
type JSONFileResult struct {
	Path          string          `json:"path"`
	Language      string          `json:"language,omitempty"`
	Status        pipeline.Status `json:"status"`
	OutputPath    string          `json:"outputPath,omitempty"`
	Lines         int             `json:"lines"`
	MnemonicWidth int             `json:"mnemonicWidth"`
	OperandWidth  int             `json:"operandWidth"`
	Diff          string          `json:"diff,omitempty"`
	Added         int             `json:"added,omitempty"`
	Removed       int             `json:"removed,omitempty"`
	BackupCreated bool            `json:"backupCreated,omitempty"`
	SkipReason    string          `json:"skipReason,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	FilesUnchanged  int `json:"filesUnchanged"`
	FilesFormatted  int `json:"filesFormatted"`
	FilesWouldFix   int `json:"filesWouldFix"`
	FilesLintFailed int `json:"filesLintFailed"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return failures(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:     displayPath(r.opts.WorkingDir, file.Path),
			Language: file.Language,
		}

		if file.Error != nil {
			entry.Error = file.Error.Error()
		}

		if res := file.Result; res != nil {
			entry.Status = res.Status
			if res.OutputPath != res.Path {
				entry.OutputPath = displayPath(r.opts.WorkingDir, res.OutputPath)
			}
			entry.Lines = res.Lines
			entry.MnemonicWidth = res.Widths.Mnemonic
			entry.OperandWidth = res.Widths.Operand
			entry.BackupCreated = res.BackupCreated
			entry.SkipReason = res.SkipReason
			if res.Diff.HasChanges() {
				entry.Diff = res.Diff.String()
				entry.Added = res.Diff.Added
				entry.Removed = res.Diff.Removed
			}
		}

		output.Files = append(output.Files, entry)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesChecked:    stats.FilesDiscovered,
		FilesUnchanged:  stats.FilesUnchanged,
		FilesFormatted:  stats.FilesFormatted,
		FilesWouldFix:   stats.FilesWouldFix,
		FilesLintFailed: stats.FilesLintFailed,
		FilesSkipped:    stats.FilesSkipped,
		FilesErrored:    stats.FilesErrored,
	}

	return output
}
