// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldJobs   = "jobs"
	FieldRules  = "rules"
	FieldFormat = "format"
	FieldStrict = "strict"
	FieldPack   = "pack"

	// Statistics fields.
	FieldDocumentsValidated = "documents_validated"
	FieldDocumentsFailed    = "documents_failed"
	FieldFindingsTotal      = "findings_total"
	FieldErrors             = "errors"
	FieldWarnings           = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
