package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/asmfmt/internal/logging"
	"github.com/yaklabco/asmfmt/pkg/pipeline"
)

// Runner formats many files with one Pipeline.
type Runner struct {
	Pipeline *pipeline.Pipeline
}

// New creates a Runner around p.
func New(p *pipeline.Pipeline) *Runner {
	return &Runner{Pipeline: p}
}

// Run discovers files and processes them with at most opts.Jobs running at
// once. A failure on one file is recorded in its outcome and does not stop
// the others. Outcomes are reported in discovery order regardless of
// completion order. Cancellation stops scheduling new files and is
// returned together with the partial result.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]*FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(min(jobs, len(files)))

	for idx, file := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}
			fileCtx := logging.WithFields(groupCtx, logging.FieldPath, file.Path)
			outcome := FileOutcome{Path: file.Path, Language: file.Language}
			outcome.Result, outcome.Error = r.Pipeline.ProcessFile(fileCtx, file.Path, opts.Pipeline)
			outcomes[idx] = &outcome
			logOutcome(fileCtx, outcome)
			return nil
		})
	}
	_ = group.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func logOutcome(ctx context.Context, outcome FileOutcome) {
	logger := logging.FromContext(ctx)
	if outcome.Error != nil {
		logger.Debug("file failed", logging.FieldError, outcome.Error)
		return
	}
	res := outcome.Result
	logger.Debug("processed file",
		logging.FieldLanguage, outcome.Language,
		logging.FieldStatus, res.Status,
		logging.FieldLines, res.Lines,
		logging.FieldMnemonicWidth, res.Widths.Mnemonic,
		logging.FieldOperandWidth, res.Widths.Operand,
	)
}
