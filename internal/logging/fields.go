// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldSize       = "size"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldMode   = "mode"
	FieldColor  = "color"
	FieldConfig = "config"

	// Validation fields.
	FieldVerdict     = "verdict"
	FieldFilesTotal  = "files_total"
	FieldFilesFailed = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
