package formatter

import "strings"

// reflowComments re-indents every run of comment and blank lines to the
// indentation of the code line that follows the run. Banner blocks are
// copied through unchanged, and so is a trailing run with no code after it.
func reflowComments(lines []string, vocab *vocabulary) []string {
	out := make([]string, 0, len(lines))
	inBanner := false

	for index := 0; index < len(lines); {
		line := lines[index]
		kind := vocab.classify(line)

		if kind != KindComment && kind != KindBanner {
			inBanner = false
			out = append(out, line)
			index++
			continue
		}

		if kind == KindBanner {
			inBanner = true
		}
		if inBanner {
			out = append(out, line)
			index++
			continue
		}

		target := index + 1
		for target < len(lines) {
			next := vocab.classify(lines[target])
			if next != KindComment && next != KindBlank {
				break
			}
			target++
		}

		if target == len(lines) || vocab.classify(lines[target]) == KindBanner {
			out = append(out, lines[index:target]...)
			index = target
			continue
		}

		prefix := strings.Repeat(" ", indentation(lines[target]))
		for ; index < target; index++ {
			run := lines[index]
			if run != "" {
				run = prefix + strings.TrimLeft(run, " ")
			}
			out = append(out, run)
		}
	}

	return out
}

// trimTrailingBlanks drops blank lines at the end of the file.
func trimTrailingBlanks(lines []string) []string {
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}
