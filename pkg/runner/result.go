package runner

import (
	"errors"

	"github.com/yaklabco/specvalidate/pkg/fsutil"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

// FileOutcome is the validation outcome for one path.
type FileOutcome struct {
	// Path is the file path as supplied.
	Path string

	// Result is the validation result. Nil if the file could not be read.
	Result *validate.Result

	// Error is set if the file could not be read.
	Error error
}

// Passed reports whether the file was read and its verdict passed.
func (o FileOutcome) Passed() bool {
	return o.Error == nil && o.Result != nil && o.Result.Verdict.Passed()
}

// NotFound reports whether the file did not exist.
func (o FileOutcome) NotFound() bool {
	return errors.Is(o.Error, fsutil.ErrNotFound)
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesTotal is the number of paths processed.
	FilesTotal int

	// FilesPassed is the number of files with a clean PASSED verdict.
	FilesPassed int

	// FilesWithWarnings is the number of files that passed with warnings.
	FilesWithWarnings int

	// FilesFailed is the number of readable files with a FAILED verdict.
	FilesFailed int

	// FilesUnreadable is the number of paths that could not be read.
	FilesUnreadable int
}

// Failures returns the number of paths that count as failed.
func (s Stats) Failures() int {
	return s.FilesFailed + s.FilesUnreadable
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each path, in argument order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// Passed reports whether every file passed, with or without warnings.
func (r *Result) Passed() bool {
	if r == nil {
		return true
	}
	return r.Stats.Failures() == 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.FilesTotal++

	if outcome.Error != nil || outcome.Result == nil {
		r.Stats.FilesUnreadable++
		return
	}

	switch outcome.Result.Verdict {
	case validate.VerdictPassed:
		r.Stats.FilesPassed++
	case validate.VerdictPassedWithWarnings:
		r.Stats.FilesWithWarnings++
	default:
		r.Stats.FilesFailed++
	}
}
