package formatter

import (
	"strings"
)

// normalize cleans one raw line. The result never contains tabs, and never
// contains runs of spaces or comment markers outside string literals. Code
// lines, inline comment included, additionally lose the spaces after commas.
// An unterminated literal swallows the rest of the line unchanged.
func normalize(raw string, vocab *vocabulary) string {
	line := collapseTabs(strings.TrimSpace(raw))
	if line == "" {
		return ""
	}

	code := !vocab.isComment(line)
	if code {
		for _, directive := range vocab.spaceAfter {
			if directive != "" {
				line = strings.ReplaceAll(line, directive+"(", directive+" (")
			}
		}
	}

	marker := vocab.comment
	var out strings.Builder
	out.Grow(len(line))

	inQuote := false
	inComment := !code
	for i := 0; i < len(line); i++ {
		c := line[i]

		if !inComment && c == '"' {
			inQuote = !inQuote
			out.WriteByte(c)
			continue
		}
		if inQuote {
			out.WriteByte(c)
			continue
		}

		switch {
		case strings.HasPrefix(line[i:], marker):
			out.WriteString(marker)
			i += len(marker) - 1
			for strings.HasPrefix(line[i+1:], marker) {
				i += len(marker)
			}
			inComment = true
		case c == ' ' && code:
			out.WriteByte(c)
			i = skipSpaces(line, i)
		case c == ',' && code:
			out.WriteByte(c)
			i = skipSpaces(line, i)
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

// skipSpaces returns the index of the last space in the run following i.
func skipSpaces(line string, i int) int {
	for i+1 < len(line) && line[i+1] == ' ' {
		i++
	}
	return i
}

// collapseTabs replaces every run of tab characters with one space.
func collapseTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var out strings.Builder
	out.Grow(len(line))
	prevTab := false
	for _, r := range line {
		if r == '\t' {
			if !prevTab {
				out.WriteByte(' ')
			}
			prevTab = true
			continue
		}
		prevTab = false
		out.WriteRune(r)
	}
	return out.String()
}
