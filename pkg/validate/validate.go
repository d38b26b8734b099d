package validate

import (
	"github.com/yaklabco/specvalidate/pkg/config"
	"github.com/yaklabco/specvalidate/pkg/patterns"
)

// Options controls a single document validation.
type Options struct {
	// Mode selects full or quick checks. Empty means full.
	Mode config.Mode

	// Required lists the section names to look for. Nil means the
	// built-in list for Mode.
	Required []string

	// Thresholds are the recommendation limits. Nil means
	// DefaultThresholds.
	Thresholds *Thresholds
}

// OptionsFromConfig builds Options for mode from the resolved configuration.
func OptionsFromConfig(cfg *config.Config, mode config.Mode) Options {
	th := ThresholdsFromConfig(cfg)
	return Options{
		Mode:       mode,
		Required:   cfg.RequiredSections(mode),
		Thresholds: &th,
	}
}

// Result is everything found in one document.
type Result struct {
	Mode            config.Mode
	Required        []string
	Found           []string
	Missing         []string
	Issues          Issues
	Stats           Stats
	Recommendations []Recommendation
	Verdict         Verdict
}

// Validate runs every check over content and computes the verdict.
func Validate(content string, opts Options) *Result {
	mode := opts.Mode
	if mode == "" {
		mode = config.ModeFull
	}

	required := opts.Required
	if required == nil {
		required = patterns.FullSections()
		if mode == config.ModeQuick {
			required = patterns.QuickSections()
		}
	}

	th := DefaultThresholds()
	if opts.Thresholds != nil {
		th = *opts.Thresholds
	}

	found, missing := CheckSections(content, required)
	issues := ScanQuality(content)
	stats := CollectStats(content)

	return &Result{
		Mode:            mode,
		Required:        required,
		Found:           found,
		Missing:         missing,
		Issues:          issues,
		Stats:           stats,
		Recommendations: Recommend(stats, mode, th),
		Verdict:         Decide(missing, issues),
	}
}
