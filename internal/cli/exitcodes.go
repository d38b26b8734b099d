package cli

import "github.com/yaklabco/specvalidate/pkg/runner"

// Exit codes for specvalidate.
const (
	// ExitSuccess indicates every document passed, with or without warnings.
	ExitSuccess = 0

	// ExitValidationFailed indicates a document failed, could not be read,
	// or the command itself could not run.
	ExitValidationFailed = 1
)

// ExitCodeFromResult determines the exit code for a validation run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || result.Passed() {
		return ExitSuccess
	}
	return ExitValidationFailed
}
