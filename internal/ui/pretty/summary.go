package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/asmfmt/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 files failed linting, 1 error (12 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesDiscovered, plural(stats.FilesDiscovered)))

	var parts []string
	if stats.FilesLintFailed > 0 {
		parts = append(parts, s.Failure.Render(
			fmt.Sprintf("%d %s failed linting", stats.FilesLintFailed, plural(stats.FilesLintFailed))))
	}
	if stats.FilesWouldFix > 0 {
		parts = append(parts, s.Warning.Render(
			fmt.Sprintf("%d %s would be reformatted", stats.FilesWouldFix, plural(stats.FilesWouldFix))))
	}
	if stats.FilesFormatted > 0 {
		parts = append(parts, s.Success.Render(
			fmt.Sprintf("%d %s formatted", stats.FilesFormatted, plural(stats.FilesFormatted))))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(
			fmt.Sprintf("%d %s skipped", stats.FilesSkipped, plural(stats.FilesSkipped))))
	}
	if stats.FilesErrored > 0 {
		word := "errors"
		if stats.FilesErrored == 1 {
			word = "error"
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.FilesErrored, word)))
	}

	if len(parts) == 0 {
		return s.Success.Render("All files formatted") + checked + "\n"
	}
	return strings.Join(parts, ", ") + checked + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value int, style func(...string) string) {
		builder.WriteString(fmt.Sprintf("  %-19s", label+":") + style(strconv.Itoa(value)) + "\n")
	}

	row("Files checked", stats.FilesDiscovered, s.SummaryValue.Render)
	row("Files unchanged", stats.FilesUnchanged, s.SummaryValue.Render)
	if stats.FilesFormatted > 0 {
		row("Files formatted", stats.FilesFormatted, s.Success.Render)
	}
	if stats.FilesWouldFix > 0 {
		row("Would reformat", stats.FilesWouldFix, s.Warning.Render)
	}
	if stats.FilesLintFailed > 0 {
		row("Failed linting", stats.FilesLintFailed, s.Failure.Render)
	}
	if stats.FilesSkipped > 0 {
		row("Files skipped", stats.FilesSkipped, s.Warning.Render)
	}
	if stats.FilesErrored > 0 {
		row("Files with errors", stats.FilesErrored, s.Error.Render)
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Run failed with errors"))
	case stats.FilesLintFailed > 0:
		builder.WriteString(s.Failure.Render("Lint failed"))
	case stats.FilesWouldFix > 0:
		builder.WriteString(s.Warning.Render("Formatting required"))
	default:
		builder.WriteString(s.Success.Render("Formatting clean"))
	}
	builder.WriteString("\n")

	return builder.String()
}
