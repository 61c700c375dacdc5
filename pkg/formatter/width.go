package formatter

import "strings"

// WidthTable holds the widest mnemonic and operand fields of one file.
// It is computed once, before layout, and never updated during layout.
type WidthTable struct {
	Mnemonic int
	Operand  int
}

// collectWidths scans cleaned lines and records the widest mnemonic and the
// widest single operand that is followed by more tokens. Labels, comments,
// comma lists and no-indent directives do not take part.
func collectWidths(lines []string, vocab *vocabulary) WidthTable {
	var table WidthTable

	for _, line := range lines {
		if line == "" || vocab.isComment(line) {
			continue
		}

		f := splitFields(line)
		if f.hasField1 && vocab.noIndent.has(f.field1) {
			continue
		}
		if strings.HasSuffix(f.field0, ":") {
			continue
		}
		if vocab.noIndent.has(f.field0) {
			continue
		}

		table.Mnemonic = max(table.Mnemonic, displayWidth(f.field0))

		if !f.hasField1 || containsUnquoted(f.field1, ",") {
			continue
		}
		if len(f.tokens) > 2 && f.tokens[2] != vocab.comment {
			table.Operand = max(table.Operand, displayWidth(f.field1))
		}
	}

	return table
}
