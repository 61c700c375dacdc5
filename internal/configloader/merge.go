package configloader

import (
	"slices"

	"github.com/yaklabco/asmfmt/pkg/config"
)

// Overrides holds explicitly set values, typically from CLI flags. A nil
// field leaves the configuration alone, so a flag can turn a boolean off
// as well as on.
type Overrides struct {
	Extensions   []string
	Exclude      []string
	Ignore       []string
	SkipVendored *bool

	Suffix     *string
	LintSuffix *string

	IndentWidth    *int
	CommentOffset  *int
	MinIndentation *int
	MnemonicWidth  *int

	IndentLabels   *bool
	IndentMacros   *bool
	FormatComments *bool

	Lint          *bool
	DryRun        *bool
	Format        *config.OutputFormat
	Jobs          *int
	BackupEnabled *bool
}

// Apply writes every set override onto cfg.
func (o *Overrides) Apply(cfg *config.Config) {
	if o == nil || cfg == nil {
		return
	}

	if o.Extensions != nil {
		cfg.Extensions = slices.Clone(o.Extensions)
	}
	if o.Exclude != nil {
		cfg.Exclude = slices.Clone(o.Exclude)
	}
	if o.Ignore != nil {
		cfg.Ignore = slices.Clone(o.Ignore)
	}

	setIf(&cfg.SkipVendored, o.SkipVendored)
	setIf(&cfg.Suffix, o.Suffix)
	setIf(&cfg.LintSuffix, o.LintSuffix)
	setIf(&cfg.IndentWidth, o.IndentWidth)
	setIf(&cfg.CommentOffset, o.CommentOffset)
	setIf(&cfg.MinIndentation, o.MinIndentation)
	setIf(&cfg.MnemonicWidth, o.MnemonicWidth)
	setIf(&cfg.IndentLabels, o.IndentLabels)
	setIf(&cfg.IndentMacros, o.IndentMacros)
	setIf(&cfg.FormatComments, o.FormatComments)
	setIf(&cfg.Lint, o.Lint)
	setIf(&cfg.DryRun, o.DryRun)
	setIf(&cfg.Format, o.Format)
	setIf(&cfg.Jobs, o.Jobs)
	setIf(&cfg.Backups.Enabled, o.BackupEnabled)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
