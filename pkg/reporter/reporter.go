// Package reporter renders validation outcomes as a human-readable report.
package reporter

import (
	"context"

	"github.com/yaklabco/specvalidate/pkg/runner"
)

// Compile-time interface check for TextReporter.
var _ Reporter = (*TextReporter)(nil)

// Reporter formats and writes validation outcomes.
type Reporter interface {
	// ReportFile writes the full report for one file. It is called once per
	// file, in processing order, so output streams as the run progresses.
	ReportFile(ctx context.Context, outcome runner.FileOutcome) error

	// ReportSummary writes the batch summary after all files are done.
	ReportSummary(ctx context.Context, result *runner.Result) error
}

// New creates the text Reporter for the given options.
func New(opts Options) Reporter {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Color == "" {
		opts.Color = DefaultOptions().Color
	}
	return NewTextReporter(opts)
}
