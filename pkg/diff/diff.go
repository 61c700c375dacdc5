// Package diff renders line-based unified diffs between a source file and
// its formatted form.
package diff

import (
	"fmt"
	"strings"
)

// Op is the kind of a diff line, and also its unified-format prefix.
type Op byte

const (
	OpEqual  Op = ' '
	OpInsert Op = '+'
	OpDelete Op = '-'
)

// Line is one line of a hunk.
type Line struct {
	Op   Op
	Text string
}

// Hunk is a group of changes with surrounding context. Start positions are
// 1-based as in the unified format.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

// Unified is the difference between two versions of one file.
type Unified struct {
	Path    string
	Hunks   []Hunk
	Added   int
	Removed int
}

// ContextLines is the number of unchanged lines shown around each change.
const ContextLines = 3

// Compute compares before and after line by line. It returns nil when the two
// are identical.
func Compute(path string, before, after []byte) *Unified {
	a, b := lines(before), lines(after)
	edits := script(a, b)

	result := &Unified{Path: path}
	for _, edit := range edits {
		switch edit.Op {
		case OpInsert:
			result.Added++
		case OpDelete:
			result.Removed++
		}
	}
	if result.Added == 0 && result.Removed == 0 {
		return nil
	}

	result.Hunks = hunks(edits)
	return result
}

// HasChanges reports whether u describes any change.
func (u *Unified) HasChanges() bool {
	return u != nil && len(u.Hunks) > 0
}

// String renders u in unified format. The new side is labelled as the
// formatted version of the same path.
func (u *Unified) String() string {
	if !u.HasChanges() {
		return ""
	}

	var out strings.Builder
	fmt.Fprintf(&out, "--- %s\n", u.Path)
	fmt.Fprintf(&out, "+++ %s (formatted)\n", u.Path)
	for _, h := range u.Hunks {
		fmt.Fprintf(&out, "@@ -%s +%s @@\n", span(h.OldStart, h.OldLines), span(h.NewStart, h.NewLines))
		for _, line := range h.Lines {
			out.WriteByte(byte(line.Op))
			out.WriteString(line.Text)
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func span(start, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

// noNewline marks a last line that has no terminating newline. It is kept
// as part of the line text so such a line never compares equal to its
// terminated form.
const noNewline = "\n\\ No newline at end of file"

// lines splits content on newlines. A final newline does not produce an
// empty last line.
func lines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	split := strings.Split(string(content), "\n")
	if last := len(split) - 1; split[last] == "" {
		split = split[:last]
	} else {
		split[last] += noNewline
	}
	return split
}

// script returns a shortest edit script turning a into b. Common prefix and
// suffix are matched directly; the middle is resolved with a
// longest-common-subsequence table.
func script(a, b []string) []Line {
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	edits := make([]Line, 0, len(a)+len(b))
	for _, text := range a[:prefix] {
		edits = append(edits, Line{Op: OpEqual, Text: text})
	}

	midA := a[prefix : len(a)-suffix]
	midB := b[prefix : len(b)-suffix]
	edits = append(edits, middle(midA, midB)...)

	for _, text := range a[len(a)-suffix:] {
		edits = append(edits, Line{Op: OpEqual, Text: text})
	}
	return edits
}

// maxTableCells bounds the LCS table of the changed middle section. Larger
// sections are reported as a block replacement.
const maxTableCells = 1 << 22

func middle(a, b []string) []Line {
	edits := make([]Line, 0, len(a)+len(b))
	if len(a) == 0 || len(b) == 0 || (len(a)+1)*(len(b)+1) > maxTableCells {
		return replaceAll(edits, a, b)
	}

	// table[i*width+j] is the LCS length of a[i:] and b[j:].
	width := len(b) + 1
	table := make([]int32, (len(a)+1)*width)
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i*width+j] = table[(i+1)*width+j+1] + 1
			} else {
				table[i*width+j] = max(table[(i+1)*width+j], table[i*width+j+1])
			}
		}
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			edits = append(edits, Line{Op: OpEqual, Text: a[i]})
			i++
			j++
		case table[(i+1)*width+j] >= table[i*width+j+1]:
			edits = append(edits, Line{Op: OpDelete, Text: a[i]})
			i++
		default:
			edits = append(edits, Line{Op: OpInsert, Text: b[j]})
			j++
		}
	}
	return replaceAll(edits, a[i:], b[j:])
}

// replaceAll appends the deletion of a followed by the insertion of b.
func replaceAll(edits []Line, a, b []string) []Line {
	for _, text := range a {
		edits = append(edits, Line{Op: OpDelete, Text: text})
	}
	for _, text := range b {
		edits = append(edits, Line{Op: OpInsert, Text: text})
	}
	return edits
}

// hunks groups an edit script into hunks. Changes separated by at most
// 2*ContextLines unchanged lines share a hunk.
func hunks(edits []Line) []Hunk {
	var out []Hunk

	for idx := 0; idx < len(edits); {
		if edits[idx].Op == OpEqual {
			idx++
			continue
		}

		first, last := idx, idx
		for next := idx + 1; next < len(edits); next++ {
			if edits[next].Op == OpEqual {
				continue
			}
			if next-last-1 > 2*ContextLines {
				break
			}
			last = next
		}

		from := max(first-ContextLines, 0)
		to := min(last+1+ContextLines, len(edits))
		out = append(out, hunkOf(edits, from, to))
		idx = to
	}

	return out
}

// hunkOf builds the hunk covering edits[from:to].
func hunkOf(edits []Line, from, to int) Hunk {
	h := Hunk{OldStart: 1, NewStart: 1}
	for _, edit := range edits[:from] {
		if edit.Op != OpInsert {
			h.OldStart++
		}
		if edit.Op != OpDelete {
			h.NewStart++
		}
	}

	for _, edit := range edits[from:to] {
		h.Lines = append(h.Lines, edit)
		if edit.Op != OpInsert {
			h.OldLines++
		}
		if edit.Op != OpDelete {
			h.NewLines++
		}
	}

	// A range of zero lines starts at the line before it.
	if h.OldLines == 0 {
		h.OldStart--
	}
	if h.NewLines == 0 {
		h.NewStart--
	}
	return h
}
