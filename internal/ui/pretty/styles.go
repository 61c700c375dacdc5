// Package pretty renders asmfmt's terminal output with Lipgloss styles.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI palette shared by every style.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
	colorGray   = lipgloss.Color("8")
)

// Styles holds the renderers for reporter and summary output. With color
// disabled every style renders its input unchanged.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	FilePath lipgloss.Style

	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles returns the styles for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style {
		if !colorEnabled {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(c)
	}
	bold := func(s lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return s
		}
		return s.Bold(true)
	}

	return &Styles{
		Error:    bold(fg(colorRed)),
		Warning:  bold(fg(colorYellow)),
		Success:  bold(fg(colorGreen)),
		Failure:  bold(fg(colorRed)),
		FilePath: bold(lipgloss.NewStyle()),

		DiffHeader:  bold(lipgloss.NewStyle()),
		DiffHunk:    fg(colorCyan),
		DiffAdd:     fg(colorGreen),
		DiffRemove:  fg(colorRed),
		DiffContext: fg(colorGray),

		SummaryTitle: bold(lipgloss.NewStyle()),
		SummaryValue: lipgloss.NewStyle(),

		Dim:  fg(colorGray),
		Bold: bold(lipgloss.NewStyle()),
	}
}

// IsColorEnabled resolves a --color mode ("auto", "always" or "never")
// against writer. Auto enables color only on a terminal with NO_COLOR unset
// (https://no-color.org/).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
