package validate

import "github.com/yaklabco/specvalidate/pkg/patterns"

// Issue is the number of matches for one quality pattern.
type Issue struct {
	Name  string
	Count int
}

// Issues holds the non-zero quality findings in pattern order.
type Issues []Issue

// Count returns the occurrences recorded for name, or zero.
func (is Issues) Count(name string) int {
	for _, issue := range is {
		if issue.Name == name {
			return issue.Count
		}
	}
	return 0
}

// Has reports whether name was found at least once.
func (is Issues) Has(name string) bool {
	return is.Count(name) > 0
}

// Total returns the sum of all counts.
func (is Issues) Total() int {
	var total int
	for _, issue := range is {
		total += issue.Count
	}
	return total
}

// HasCritical reports whether any critical pattern matched.
func (is Issues) HasCritical() bool {
	for _, issue := range is {
		if p, ok := patterns.Lookup(issue.Name); ok && p.Critical {
			return true
		}
	}
	return false
}

// ScanQuality counts the occurrences of every quality pattern in content.
// Patterns with no match are omitted.
func ScanQuality(content string) Issues {
	var issues Issues

	for _, p := range patterns.Quality() {
		if n := len(p.Regexp.FindAllStringIndex(content, -1)); n > 0 {
			issues = append(issues, Issue{Name: p.Name, Count: n})
		}
	}

	return issues
}
