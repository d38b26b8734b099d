package validate

// Verdict is the outcome assigned to one validated document.
type Verdict int

const (
	// VerdictFailed means a required section is missing or a critical issue was found.
	VerdictFailed Verdict = iota
	// VerdictPassedWithWarnings means only advisory issues were found.
	VerdictPassedWithWarnings
	// VerdictPassed means no issues of any kind were found.
	VerdictPassed
)

// String returns the verdict as printed in reports.
func (v Verdict) String() string {
	switch v {
	case VerdictPassed:
		return "PASSED"
	case VerdictPassedWithWarnings:
		return "PASSED with warnings"
	default:
		return "FAILED"
	}
}

// Passed collapses the verdict to pass/fail. Warnings still pass.
func (v Verdict) Passed() bool {
	return v != VerdictFailed
}

// Decide computes the verdict from missing sections and quality issues.
func Decide(missing []string, issues Issues) Verdict {
	switch {
	case len(missing) > 0 || issues.HasCritical():
		return VerdictFailed
	case len(issues) > 0:
		return VerdictPassedWithWarnings
	default:
		return VerdictPassed
	}
}
