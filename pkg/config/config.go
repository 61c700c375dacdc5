// Package config defines core configuration types for asmfmt.
// These types are pure data structures with no dependency on how they are loaded.
package config

// BackupsConfig controls backup behavior when overwriting source files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Mode    string `yaml:"mode" toml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies the output format for run results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// DefaultLintSuffix is the scratch-file suffix forced when lint mode is active.
const DefaultLintSuffix = ".asmb"

// Keywords is the vocabulary used to classify lines. Matching is exact and
// case-sensitive on whitespace-delimited fields.
type Keywords struct {
	// Comment starts a comment, both whole-line and inline.
	Comment string `yaml:"comment" toml:"comment"`

	// Banner starts a banner comment block. Banner blocks keep column zero.
	Banner string `yaml:"banner" toml:"banner"`

	// NoIndent tokens are never column-aligned and never receive the minimum indentation.
	NoIndent []string `yaml:"no_indent" toml:"no_indent"`

	// IndentInIf tokens get the minimum indentation when they appear inside a conditional.
	IndentInIf []string `yaml:"indent_in_if" toml:"indent_in_if"`

	// LabelNoBreak prefixes keep a label and its trailing content on one line.
	LabelNoBreak []string `yaml:"label_no_break" toml:"label_no_break"`

	// Increase tokens open a block after the current line is printed.
	Increase []string `yaml:"increase" toml:"increase"`

	// Decrease tokens close a block before the current line is printed.
	Decrease []string `yaml:"decrease" toml:"decrease"`

	// TemporaryDecrease tokens print one level out for their own line only.
	TemporaryDecrease []string `yaml:"temporary_decrease" toml:"temporary_decrease"`

	// NestedSameDepth tokens sit at their parent's level inside a nested conditional.
	NestedSameDepth []string `yaml:"nested_same_depth" toml:"nested_same_depth"`

	// ResetLabel tokens end label-triggered indentation.
	ResetLabel []string `yaml:"reset_label" toml:"reset_label"`

	// ConditionalOpen and ConditionalClose are counted through ifDepth so
	// nested conditionals share one indentation level.
	ConditionalOpen  string `yaml:"conditional_open" toml:"conditional_open"`
	ConditionalClose string `yaml:"conditional_close" toml:"conditional_close"`

	// MacroOpen and MacroClose are added to Increase/Decrease when macro
	// indentation is enabled.
	MacroOpen  string `yaml:"macro_open" toml:"macro_open"`
	MacroClose string `yaml:"macro_close" toml:"macro_close"`

	// SpaceAfter directives get a space inserted before an immediately following "(".
	SpaceAfter []string `yaml:"space_after" toml:"space_after"`
}

// Config is the root configuration structure for asmfmt.
type Config struct {
	// Extensions are the file suffixes eligible for processing, with or without a leading dot.
	Extensions []string `yaml:"extensions" toml:"extensions"`

	// Exclude contains directory names pruned from traversal.
	Exclude []string `yaml:"exclude" toml:"exclude"`

	// Ignore contains glob patterns for files or directories to skip.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// SkipVendored skips files in conventional third-party directories such as vendor/.
	SkipVendored bool `yaml:"skip_vendored" toml:"skip_vendored"`

	// Suffix, when set, writes output to path+Suffix instead of overwriting.
	Suffix string `yaml:"suffix" toml:"suffix"`

	// LintSuffix is the scratch-file suffix used by lint mode.
	LintSuffix string `yaml:"lint_suffix" toml:"lint_suffix"`

	// IndentWidth is the number of spaces per indentation level.
	IndentWidth int `yaml:"indent_width" toml:"indent_width"`

	// CommentOffset is the target column of inline comments.
	CommentOffset int `yaml:"comment_offset" toml:"comment_offset"`

	// MinIndentation is the indentation level forced onto ordinary instructions.
	MinIndentation int `yaml:"min_indentation" toml:"min_indentation"`

	// MnemonicWidth is the fixed minimum width of the mnemonic column.
	MnemonicWidth int `yaml:"mnemonic_width" toml:"mnemonic_width"`

	// IndentLabels opens a temporary indentation level after label lines.
	IndentLabels bool `yaml:"indent_labels" toml:"indent_labels"`

	// IndentMacros indents macro bodies.
	IndentMacros bool `yaml:"indent_macros" toml:"indent_macros"`

	// FormatComments re-indents comment runs to match the code that follows them.
	FormatComments bool `yaml:"format_comments" toml:"format_comments"`

	// Keywords is the line classification vocabulary.
	Keywords Keywords `yaml:"keywords" toml:"keywords"`

	// Backups configures backup behavior when overwriting files.
	Backups BackupsConfig `yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Lint verifies that formatting is a no-op instead of writing files.
	Lint bool `yaml:"-" toml:"-"`

	// DryRun computes diffs without writing files.
	DryRun bool `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`
}

// DefaultKeywords returns the built-in 8051 assembler vocabulary.
func DefaultKeywords() Keywords {
	return Keywords{
		Comment: ";",
		Banner:  ";****",
		NoIndent: []string{
			"AT", "IF", "ELSE", "ELSEIF", "MACRO", "ENDM", "$if", "$endif",
			"$set", "EQU", "DB", "DS", "END", "$include",
		},
		IndentInIf:        []string{"$include", "$set", "EQU", "AT"},
		LabelNoBreak:      []string{";", "DS", "DB"},
		Increase:          []string{"IF"},
		Decrease:          []string{"ENDIF"},
		TemporaryDecrease: []string{"ELSE", "ELSEIF"},
		NestedSameDepth:   []string{"IF", "ENDIF"},
		ResetLabel:        []string{"MACRO", "ENDM", "$include"},
		ConditionalOpen:   "IF",
		ConditionalClose:  "ENDIF",
		MacroOpen:         "MACRO",
		MacroClose:        "ENDM",
		SpaceAfter:        []string{"$set"},
	}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions:     []string{"asm", "inc"},
		Exclude:        []string{"build", "tools", "Silabs"},
		LintSuffix:     DefaultLintSuffix,
		IndentWidth:    4,
		CommentOffset:  40,
		MinIndentation: 1,
		MnemonicWidth:  4,
		Keywords:       DefaultKeywords(),
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}

// OutputSuffix returns the suffix appended to each processed path when
// writing output. Lint mode always uses the lint suffix.
func (c *Config) OutputSuffix() string {
	if c.Lint {
		if c.LintSuffix == "" {
			return DefaultLintSuffix
		}
		return c.LintSuffix
	}
	return c.Suffix
}
