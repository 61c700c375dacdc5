package reporter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/asmfmt/pkg/config"
)

// Format selects a reporter. The values match config.OutputFormat.
type Format string

// Output formats supported by the reporter.
const (
	FormatText = Format(config.FormatText)
	FormatJSON = Format(config.FormatJSON)
	FormatDiff = Format(config.FormatDiff)
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatDiff}
}

// ParseFormat maps a --format value to a Format. Matching ignores case and
// an empty value means text.
func ParseFormat(value string) (Format, error) {
	if value == "" {
		return FormatText, nil
	}
	format := Format(strings.ToLower(value))
	if !format.IsValid() {
		names := make([]string, 0, len(Formats()))
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return "", fmt.Errorf("unknown format %q; valid formats: %s", value, strings.Join(names, ", "))
	}
	return format, nil
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is one of Formats.
func (f Format) IsValid() bool {
	return slices.Contains(Formats(), f)
}
