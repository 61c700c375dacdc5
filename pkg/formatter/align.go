package formatter

import "strings"

// alignFields pads the mnemonic and operand columns of a cleaned code line.
// Comment lines, single-token lines and lines involving a no-indent keyword
// are returned unchanged apart from trailing spaces.
//
// The mnemonic is padded to mnemonicWidth. A single operand is padded to the
// file's operand width, reduced by however far the mnemonic overflowed its
// column. An operand list gets one space after each comma instead.
func alignFields(line string, widths WidthTable, mnemonicWidth int, vocab *vocabulary) string {
	if line == "" || vocab.isComment(line) {
		return line
	}

	f := splitFields(line)
	if !f.hasField1 || vocab.noIndent.hasAny(f.field0, f.field1) {
		return line
	}

	tokens := f.tokens
	pad0 := mnemonicWidth - displayWidth(f.field0)
	tokens[0] = padRight(f.field0, pad0)

	if !strings.HasPrefix(f.field1, vocab.comment) {
		if containsUnquoted(f.field1, ",") {
			tokens[1] = spaceCommas(f.field1)
		} else {
			pad1 := widths.Operand - displayWidth(f.field1)
			if pad0 < 0 {
				pad1 += pad0
			}
			tokens[1] = padRight(f.field1, pad1)
		}
	}

	return strings.TrimRight(strings.Join(tokens, " "), " ")
}

// alignComment moves an inline comment to commentOffset. When the code in
// front of the comment already reaches that column, the comment follows it
// after a single space. Whole-line comments are left alone.
func alignComment(line string, commentOffset int, vocab *vocabulary) string {
	idx := indexUnquoted(line, vocab.comment)
	if idx < 0 {
		return line
	}

	code := strings.TrimRight(line[:idx], " ")
	if code == "" {
		return line
	}

	width := displayWidth(code)
	if width < commentOffset {
		return padRight(code, commentOffset-width) + line[idx:]
	}
	return code + " " + line[idx:]
}

// spaceCommas puts one space after every comma outside string literals.
func spaceCommas(operands string) string {
	var out strings.Builder
	out.Grow(len(operands) + strings.Count(operands, ","))

	inQuote := false
	for i := 0; i < len(operands); i++ {
		c := operands[i]
		out.WriteByte(c)
		switch {
		case c == '"':
			inQuote = !inQuote
		case c == ',' && !inQuote:
			out.WriteByte(' ')
		}
	}
	return strings.TrimRight(out.String(), " ")
}

// padRight appends n spaces to s. Non-positive n leaves s unchanged.
func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
