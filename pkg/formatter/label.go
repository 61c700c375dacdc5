package formatter

import (
	"regexp"
	"strings"
)

// labelPattern matches "LABEL: REST" where LABEL is made of word characters
// and spaces and REST is non-empty.
var labelPattern = regexp.MustCompile(`^([\w\s]+:)(.+)$`)

// splitLabel breaks a cleaned "LABEL: INSTRUCTION" line into the label and
// the instruction, splitting the instruction again when it carries another
// label. The line is returned unchanged when it does not have that shape, or
// when the instruction starts with a label-no-break prefix (a comment or a
// data directive), which stays on the label's line.
func splitLabel(line string, vocab *vocabulary) []string {
	match := labelPattern.FindStringSubmatch(line)
	if match == nil {
		return []string{line}
	}

	label := strings.TrimSpace(match[1])
	rest := strings.TrimSpace(match[2])
	if rest == "" {
		return []string{line}
	}

	for _, prefix := range vocab.labelNoBreak {
		if prefix != "" && strings.HasPrefix(rest, prefix) {
			return []string{line}
		}
	}

	return append([]string{label}, splitLabel(rest, vocab)...)
}

// collapseBlankRuns replaces every run of blank lines with a single blank line.
func collapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	lastBlank := false
	for _, line := range lines {
		blank := line == ""
		if blank && lastBlank {
			continue
		}
		out = append(out, line)
		lastBlank = blank
	}
	return out
}
