// Package validate runs the single-pass checks over one spec document:
// required section headings, quality-issue patterns, document statistics,
// recommendations, and the final verdict.
//
// Every function here is pure. Validate runs all checks to completion
// before the verdict is computed.
package validate
