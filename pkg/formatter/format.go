package formatter

import (
	"strings"

	"github.com/yaklabco/asmfmt/pkg/config"
)

// Options controls the layout produced by a Formatter.
type Options struct {
	// IndentWidth is the number of spaces per indentation level.
	IndentWidth int

	// CommentOffset is the column inline comments are moved to.
	CommentOffset int

	// MinIndentation is the level forced onto ordinary instructions.
	MinIndentation int

	// MnemonicWidth is the fixed minimum width of the mnemonic column.
	MnemonicWidth int

	// IndentLabels opens a temporary level after a label line.
	IndentLabels bool

	// IndentMacros indents macro bodies.
	IndentMacros bool

	// FormatComments enables the comment reflow pass.
	FormatComments bool

	// Keywords is the line classification vocabulary.
	Keywords config.Keywords
}

// DefaultOptions returns the options of config.NewConfig.
func DefaultOptions() Options {
	return OptionsFromConfig(config.NewConfig())
}

// OptionsFromConfig extracts the layout options from a configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		IndentWidth:    cfg.IndentWidth,
		CommentOffset:  cfg.CommentOffset,
		MinIndentation: cfg.MinIndentation,
		MnemonicWidth:  cfg.MnemonicWidth,
		IndentLabels:   cfg.IndentLabels,
		IndentMacros:   cfg.IndentMacros,
		FormatComments: cfg.FormatComments,
		Keywords:       cfg.Keywords.Clone(),
	}
}

// Formatter formats assembler source. It is immutable after New and safe
// for concurrent use.
type Formatter struct {
	opts  Options
	vocab *vocabulary
}

// New creates a Formatter with the given options.
func New(opts Options) *Formatter {
	return &Formatter{
		opts:  opts,
		vocab: newVocabulary(opts.Keywords, opts.IndentMacros),
	}
}

// Options returns the options the Formatter was created with.
func (f *Formatter) Options() Options {
	return f.opts
}

// Result is the outcome of formatting one file.
type Result struct {
	// Content is the formatted file, ending in a single newline unless empty.
	Content []byte

	// Widths is the width table collected for the file.
	Widths WidthTable

	// Lines is the number of output lines.
	Lines int
}

// Format formats a complete file.
func (f *Formatter) Format(src []byte) Result {
	lines, widths := f.FormatLines(SplitLines(src))
	return Result{
		Content: JoinLines(lines),
		Widths:  widths,
		Lines:   len(lines),
	}
}

// FormatLines formats raw lines and returns the output lines, without a
// trailing blank line, together with the collected width table.
func (f *Formatter) FormatLines(raw []string) ([]string, WidthTable) {
	clean := f.Clean(raw)
	widths := collectWidths(clean, f.vocab)
	out := f.layoutPass(clean, widths)
	if f.opts.FormatComments {
		out = reflowComments(out, f.vocab)
	}
	return trimTrailingBlanks(out), widths
}

// Clean runs the per-line cleanup passes: normalization, label splitting and
// blank-run collapsing.
func (f *Formatter) Clean(raw []string) []string {
	clean := make([]string, 0, len(raw))
	for _, line := range raw {
		clean = append(clean, splitLabel(normalize(line, f.vocab), f.vocab)...)
	}
	return collapseBlankRuns(clean)
}

// Normalize cleans a single raw line.
func (f *Formatter) Normalize(line string) string {
	return normalize(line, f.vocab)
}

// SplitLabel splits a cleaned line into label and instruction when it has that shape.
func (f *Formatter) SplitLabel(line string) []string {
	return splitLabel(line, f.vocab)
}

// CollectWidths computes the width table of cleaned lines.
func (f *Formatter) CollectWidths(clean []string) WidthTable {
	return collectWidths(clean, f.vocab)
}

// Classify returns the shape of a cleaned or formatted line.
func (f *Formatter) Classify(line string) Kind {
	return f.vocab.classify(line)
}

// layoutPass is the second pass: it walks the cleaned lines with a fresh
// DepthState, aligns fields, indents and aligns inline comments.
func (f *Formatter) layoutPass(clean []string, widths WidthTable) []string {
	lay := layout{
		vocab:          f.vocab,
		indentWidth:    f.opts.IndentWidth,
		minIndentation: f.opts.MinIndentation,
		indentLabels:   f.opts.IndentLabels,
	}

	var state DepthState
	out := make([]string, 0, len(clean))
	for _, line := range clean {
		if line == "" {
			state.blank()
			out = append(out, "")
			continue
		}

		aligned := alignFields(line, widths, f.opts.MnemonicWidth, f.vocab)
		prefix := state.step(shapeOf(line, f.vocab), lay)
		indented := strings.Repeat(" ", prefix) + aligned
		out = append(out, alignComment(indented, f.opts.CommentOffset, f.vocab))
	}
	return out
}

// SplitLines splits file content into raw lines. A final newline does not
// produce an extra empty line.
func SplitLines(src []byte) []string {
	if len(src) == 0 {
		return nil
	}
	lines := strings.Split(string(src), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines joins output lines, terminating each with a newline.
func JoinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	var out strings.Builder
	for _, line := range lines {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return []byte(out.String())
}
