package validate

import (
	"regexp"
)

// headingPrefix matches a heading marker anywhere on a line, followed by an
// optional numeric label such as "1", "1." or "2.1". Markers inside
// blockquotes, list items or indented blocks count too.
const headingPrefix = `(?i)#+[ \t]+(?:\d+(?:\.\d+)*\.?)?[ \t]*`

// CheckSections reports which of the required section names appear as
// headings in content. Both results preserve the order of required.
//
// The name only has to start the heading text, so "## Overview of Design"
// satisfies "Overview".
func CheckSections(content string, required []string) (found, missing []string) {
	found = make([]string, 0, len(required))
	missing = make([]string, 0)

	for _, name := range required {
		if sectionPattern(name).MatchString(content) {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}

	return found, missing
}

func sectionPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(headingPrefix + regexp.QuoteMeta(name))
}
