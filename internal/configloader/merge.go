package configloader

import "github.com/yaklabco/specvalidate/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Pointer thresholds: override wins when set
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Debug {
		result.Debug = true
	}

	if override.Sections.Full != nil {
		result.Sections.Full = append([]string(nil), override.Sections.Full...)
	}
	if override.Sections.Quick != nil {
		result.Sections.Quick = append([]string(nil), override.Sections.Quick...)
	}

	mergeInt(&result.Thresholds.MinCriteria, override.Thresholds.MinCriteria)
	mergeInt(&result.Thresholds.MinCodeBlocks, override.Thresholds.MinCodeBlocks)
	mergeInt(&result.Thresholds.MinTableRows, override.Thresholds.MinTableRows)
	mergeInt(&result.Thresholds.MinLines, override.Thresholds.MinLines)
	mergeInt(&result.Thresholds.MaxLines, override.Thresholds.MaxLines)

	return result
}

func mergeInt(dst **int, src *int) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}
