package validate

import (
	"regexp"
	"strings"
)

const codeFence = "```"

//nolint:gochecknoglobals // Compiled once, read-only afterwards.
var (
	criteriaPattern = regexp.MustCompile(`(?i)- \[[x ]\] .+`)
	tableRowPattern = regexp.MustCompile(`(?m)^\|.+\|$`)
)

// Stats are the document counts used for recommendations.
type Stats struct {
	// Criteria is the number of checkbox items with text.
	Criteria int

	// CodeBlocks is the number of complete fenced code blocks.
	CodeBlocks int

	// TableRows is the number of lines that start and end with a pipe.
	TableRows int

	// Lines is the number of newline-separated segments.
	Lines int
}

// CollectStats counts checkbox criteria, code blocks, table rows and lines.
func CollectStats(content string) Stats {
	return Stats{
		Criteria:   len(criteriaPattern.FindAllStringIndex(content, -1)),
		CodeBlocks: countCodeBlocks(content),
		TableRows:  len(tableRowPattern.FindAllStringIndex(content, -1)),
		Lines:      strings.Count(content, "\n") + 1,
	}
}

// countCodeBlocks pairs fence markers. An unmatched trailing fence is dropped.
func countCodeBlocks(content string) int {
	return strings.Count(content, codeFence) / 2
}
