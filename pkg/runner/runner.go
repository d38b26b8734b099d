package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/specvalidate/internal/logging"
	"github.com/yaklabco/specvalidate/pkg/fsutil"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

// Runner validates spec files one after another.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run validates opts.Paths sequentially, in the order given.
//
// The runner:
//   - Reads each file and closes it before moving to the next
//   - Records unreadable paths as failures without stopping the batch
//   - Hands each outcome to opts.Visit as soon as it is ready
//   - Stops between files when the context is cancelled
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	mode := opts.effectiveMode()
	validateOpts := validate.OptionsFromConfig(opts.Config, mode)

	result := &Result{
		Files: make([]FileOutcome, 0, len(opts.Paths)),
	}

	for _, path := range opts.Paths {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run cancelled: %w", err)
		}

		outcome := r.ValidateFile(ctx, path, validateOpts)
		result.accumulate(outcome)

		if outcome.Error != nil {
			logger.Debug("file not validated",
				logging.FieldPath, path,
				logging.FieldError, outcome.Error,
			)
		} else {
			logger.Debug("file validated",
				logging.FieldPath, path,
				logging.FieldMode, mode,
				logging.FieldVerdict, outcome.Result.Verdict,
			)
		}

		if opts.Visit != nil {
			if err := opts.Visit(outcome); err != nil {
				return result, fmt.Errorf("visit %s: %w", path, err)
			}
		}
	}

	logger.Debug("validation run complete",
		logging.FieldFilesTotal, result.Stats.FilesTotal,
		logging.FieldFilesFailed, result.Stats.Failures(),
	)

	return result, nil
}

// ValidateFile reads and validates a single file.
func (r *Runner) ValidateFile(ctx context.Context, path string, opts validate.Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadText(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	logging.FromContext(ctx).Debug("read file",
		logging.FieldPath, info.Path,
		logging.FieldSize, info.Size,
	)

	outcome.Result = validate.Validate(content, opts)
	return outcome
}
