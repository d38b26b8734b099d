// Package runner provides multi-file validation orchestration.
package runner

import "github.com/yaklabco/specvalidate/pkg/config"

// Options controls a validation run.
type Options struct {
	// Paths are the files to validate, in the order supplied.
	Paths []string

	// Mode selects the required-section set. Empty falls back to Config.Mode,
	// then to full.
	Mode config.Mode

	// Config is the resolved configuration for this run.
	Config *config.Config

	// Visit, if set, is called with each outcome as soon as the file has
	// been validated. A non-nil error stops the run.
	Visit func(FileOutcome) error
}

// effectiveMode resolves the mode from the options and configuration.
func (o Options) effectiveMode() config.Mode {
	if o.Mode != "" {
		return o.Mode
	}
	if o.Config != nil && o.Config.Mode != "" {
		return o.Config.Mode
	}
	return config.ModeFull
}
