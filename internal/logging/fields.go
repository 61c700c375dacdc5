package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldLanguage   = "language"
	FieldStatus     = "status"

	// Run options.
	FieldLint    = "lint"
	FieldDryRun  = "dry_run"
	FieldSuffix  = "suffix"
	FieldJobs    = "jobs"
	FieldTimeout = "timeout"

	// Per-file layout.
	FieldLines         = "lines"
	FieldMnemonicWidth = "mnemonic_width"
	FieldOperandWidth  = "operand_width"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesFormatted  = "files_formatted"
	FieldFilesUnchanged  = "files_unchanged"
	FieldFilesLintFailed = "files_lint_failed"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
