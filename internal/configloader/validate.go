package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/asmfmt/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "keywords.comment").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
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

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText: true,
	config.FormatJSON: true,
	config.FormatDiff: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if len(cfg.Extensions) == 0 {
		result.fail("extensions", cfg.Extensions, "at least one extension is required")
	}
	for i, ext := range cfg.Extensions {
		if strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "" {
			result.fail(fmt.Sprintf("extensions[%d]", i), ext, "extension must not be empty")
		}
	}

	if cfg.IndentWidth < 1 {
		result.fail("indent_width", cfg.IndentWidth, "indent_width must be >= 1")
	}
	for _, field := range []struct {
		name  string
		value int
	}{
		{"comment_offset", cfg.CommentOffset},
		{"min_indentation", cfg.MinIndentation},
		{"mnemonic_width", cfg.MnemonicWidth},
		{"jobs", cfg.Jobs},
	} {
		if field.value < 0 {
			result.fail(field.name, field.value, "%s must be >= 0", field.name)
		}
	}

	validateSuffixes(cfg, result)

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, diff", cfg.Format)
	}
	if cfg.Backups.Mode != "" && !knownBackupModes[cfg.Backups.Mode] {
		result.fail("backups.mode", cfg.Backups.Mode, "invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	validateKeywords(cfg.Keywords, result)

	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern %q", pattern)
		}
	}

	return result
}

func validateSuffixes(cfg *config.Config, result *ValidationResult) {
	if cfg.LintSuffix == "" {
		result.fail("lint_suffix", cfg.LintSuffix, "lint_suffix must not be empty")
	}
	if cfg.Suffix != "" && cfg.Suffix == cfg.LintSuffix {
		result.fail("suffix", cfg.Suffix, "suffix must differ from lint_suffix %q", cfg.LintSuffix)
	}
	for i, ext := range cfg.Extensions {
		norm := "." + strings.TrimPrefix(strings.ToLower(ext), ".")
		if cfg.Suffix != "" && strings.HasSuffix(strings.ToLower(cfg.Suffix), norm) {
			result.warn("suffix", cfg.Suffix,
				"output files ending in %q match extensions[%d] and will be formatted on the next run", cfg.Suffix, i)
		}
	}
	if cfg.Suffix != "" && cfg.Backups.Enabled {
		result.warn("backups.enabled", true, "backups are not created when writing to a suffix")
	}
}

func validateKeywords(kw config.Keywords, result *ValidationResult) {
	if strings.TrimSpace(kw.Comment) == "" {
		result.fail("keywords.comment", kw.Comment, "comment marker must not be empty")
	}
	if kw.Banner != "" && kw.Comment != "" && !strings.HasPrefix(kw.Banner, kw.Comment) {
		result.warn("keywords.banner", kw.Banner, "banner %q does not start with the comment marker %q", kw.Banner, kw.Comment)
	}
	if (kw.ConditionalOpen == "") != (kw.ConditionalClose == "") {
		result.fail("keywords.conditional_open", kw.ConditionalOpen,
			"conditional_open and conditional_close must be set together")
	}
	if (kw.MacroOpen == "") != (kw.MacroClose == "") {
		result.fail("keywords.macro_open", kw.MacroOpen, "macro_open and macro_close must be set together")
	}
}
