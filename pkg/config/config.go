// Package config defines core configuration types for specvalidate.
// These types are pure data structures with no dependency on how they are loaded.
package config

import "github.com/yaklabco/specvalidate/pkg/patterns"

// Mode selects which required-section set a document is checked against.
type Mode string

const (
	// ModeFull checks the comprehensive eight-section set.
	ModeFull Mode = "full"
	// ModeQuick checks the lightweight four-section set.
	ModeQuick Mode = "quick"
)

// IsValid returns true if the mode is known.
func (m Mode) IsValid() bool {
	switch m {
	case ModeFull, ModeQuick:
		return true
	default:
		return false
	}
}

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SectionsConfig overrides the built-in required section lists.
// A nil list keeps the built-in set for that mode.
type SectionsConfig struct {
	Full  []string `yaml:"full,omitempty"`
	Quick []string `yaml:"quick,omitempty"`
}

// ThresholdsConfig overrides the recommendation thresholds.
// Nil fields keep the built-in value.
type ThresholdsConfig struct {
	MinCriteria   *int `yaml:"min_criteria,omitempty"`
	MinCodeBlocks *int `yaml:"min_code_blocks,omitempty"`
	MinTableRows  *int `yaml:"min_table_rows,omitempty"`
	MinLines      *int `yaml:"min_lines,omitempty"`
	MaxLines      *int `yaml:"max_lines,omitempty"`
}

// Config is the root configuration structure for specvalidate.
type Config struct {
	// Mode is the default validation mode ("full" or "quick").
	Mode Mode `yaml:"mode,omitempty"`

	// Color controls colorized output: auto, always, never.
	Color string `yaml:"color,omitempty"`

	// Sections overrides the required section lists per mode.
	Sections SectionsConfig `yaml:"sections,omitempty"`

	// Thresholds overrides the recommendation thresholds.
	Thresholds ThresholdsConfig `yaml:"thresholds,omitempty"`

	// CLI-level options (not persisted to config files).

	// Debug enables debug logging.
	Debug bool `yaml:"-"`
}

// NewConfig returns a Config with the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Mode:  ModeFull,
		Color: ColorAuto,
	}
}

// RequiredSections returns the section names required in the given mode,
// falling back to the built-in lists when no override is configured.
func (c *Config) RequiredSections(mode Mode) []string {
	if mode == ModeQuick {
		if c != nil && c.Sections.Quick != nil {
			return append([]string(nil), c.Sections.Quick...)
		}
		return patterns.QuickSections()
	}
	if c != nil && c.Sections.Full != nil {
		return append([]string(nil), c.Sections.Full...)
	}
	return patterns.FullSections()
}

// IntPtr returns a pointer to v. Handy for building ThresholdsConfig values.
func IntPtr(v int) *int {
	return &v
}
