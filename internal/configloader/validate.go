package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/specvalidate/pkg/config"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "thresholds.min_lines").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., duplicate section names).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// knownColors lists valid color mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColors = map[string]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Mode != "" && !cfg.Mode.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "mode",
			Value:   cfg.Mode,
			Message: fmt.Sprintf("invalid mode %q; must be one of: full, quick", cfg.Mode),
		})
	}

	if cfg.Color != "" && !knownColors[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	validateSections("sections.full", cfg.Sections.Full, result)
	validateSections("sections.quick", cfg.Sections.Quick, result)
	validateThresholds(cfg, result)

	return result
}

// validateSections rejects blank names and warns about duplicates.
func validateSections(field string, names []string, result *ValidationResult) {
	if names != nil && len(names) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   field,
			Message: "empty section list; every document will pass the section check",
		})
	}

	seen := make(map[string]bool, len(names))
	for i, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   name,
				Message: "section name must not be blank",
			})
			continue
		}
		if seen[key] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   name,
				Message: fmt.Sprintf("duplicate section %q", name),
			})
		}
		seen[key] = true
	}
}

// validateThresholds rejects negative limits and an inverted line range.
func validateThresholds(cfg *config.Config, result *ValidationResult) {
	fields := []struct {
		name  string
		value *int
	}{
		{"thresholds.min_criteria", cfg.Thresholds.MinCriteria},
		{"thresholds.min_code_blocks", cfg.Thresholds.MinCodeBlocks},
		{"thresholds.min_table_rows", cfg.Thresholds.MinTableRows},
		{"thresholds.min_lines", cfg.Thresholds.MinLines},
		{"thresholds.max_lines", cfg.Thresholds.MaxLines},
	}

	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   f.name,
				Value:   *f.value,
				Message: "threshold must be >= 0",
			})
		}
	}

	if cfg.Thresholds.MinLines != nil && cfg.Thresholds.MaxLines != nil {
		result.Errors = append(result.Errors, lineRangeErrors(*cfg.Thresholds.MinLines, *cfg.Thresholds.MaxLines)...)
	}
}

// ValidateEffective checks the merged configuration, where unset thresholds
// resolve to their built-in values.
func ValidateEffective(cfg *config.Config) *ValidationResult {
	result := Validate(cfg)
	if cfg == nil || !result.Valid() {
		return result
	}

	th := validate.ThresholdsFromConfig(cfg)
	if cfg.Thresholds.MinLines == nil || cfg.Thresholds.MaxLines == nil {
		result.Errors = append(result.Errors, lineRangeErrors(th.MinLines, th.MaxLines)...)
	}

	return result
}

func lineRangeErrors(minLines, maxLines int) []ValidationError {
	if minLines <= maxLines {
		return nil
	}
	return []ValidationError{{
		Field:   "thresholds.min_lines",
		Value:   minLines,
		Message: fmt.Sprintf("min_lines (%d) must not exceed max_lines (%d)", minLines, maxLines),
	}}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
