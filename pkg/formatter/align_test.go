package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		widths WidthTable
		want   string
	}{
		{name: "single token", line: "NOP", want: "NOP"},
		{name: "operand list gets comma spaces", line: "MOV A,B", want: "MOV  A, B"},
		{name: "quoted comma untouched", line: `MOV A,#","`, want: `MOV  A, #","`},
		{name: "single operand padded to file width", line: "INC A ;x", widths: WidthTable{Operand: 5}, want: "INC  A     ;x"},
		{name: "mnemonic overflow shortens operand padding", line: "LCALL DELAY ;wait", widths: WidthTable{Operand: 5}, want: "LCALL DELAY ;wait"},
		{name: "trailing padding trimmed", line: "INC A", widths: WidthTable{Operand: 8}, want: "INC  A"},
		{name: "comment operand not padded", line: "RET ;done", widths: WidthTable{Operand: 8}, want: "RET  ;done"},
		{name: "no-indent directive untouched", line: "COUNT EQU 10", want: "COUNT EQU 10"},
		{name: "data directive untouched", line: `DB "a,b",0`, want: `DB "a,b",0`},
		{name: "comment line untouched", line: "; a,b", want: "; a,b"},
		{name: "quoted operand kept whole", line: `DW "a b"`, widths: WidthTable{Operand: 5}, want: `DW   "a b"`},
		{name: "short quoted operand padded outside the quotes", line: `DW "a b" ;s`, widths: WidthTable{Operand: 7}, want: `DW   "a b"   ;s`},
	}

	vocab := defaultVocab()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, alignFields(tt.line, tt.widths, 4, vocab))
		})
	}
}

func TestAlignComment(t *testing.T) {
	t.Parallel()

	vocab := defaultVocab()

	t.Run("moves comment to the offset", func(t *testing.T) {
		t.Parallel()

		got := alignComment("    MOV  A, B ;copy", 40, vocab)
		assert.Equal(t, "    MOV  A, B"+strings.Repeat(" ", 27)+";copy", got)
		assert.Equal(t, 40, strings.Index(got, ";"))
	})

	t.Run("long code keeps one space", func(t *testing.T) {
		t.Parallel()

		code := "    LCALL " + strings.Repeat("X", 40)
		got := alignComment(code+"   ;c", 40, vocab)
		assert.Equal(t, code+" ;c", got)
	})

	t.Run("code exactly at the offset keeps one space", func(t *testing.T) {
		t.Parallel()

		code := strings.Repeat("A", 10)
		assert.Equal(t, code+" ;c", alignComment(code+";c", 10, vocab))
	})

	t.Run("whole-line comment untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "    ; note", alignComment("    ; note", 40, vocab))
	})

	t.Run("quoted marker is not a comment", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `    DB ";"`, alignComment(`    DB ";"`, 40, vocab))
	})

	t.Run("wide runes measured in cells", func(t *testing.T) {
		t.Parallel()

		got := alignComment("    DB 値 ;c", 12, vocab)
		assert.Equal(t, "    DB 値"+strings.Repeat(" ", 3)+";c", got)
	})
}

func TestSpaceCommas(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A, B", spaceCommas("A,B"))
	assert.Equal(t, "R0, R1, R2", spaceCommas("R0,R1,R2"))
	assert.Equal(t, `"a,b", 0`, spaceCommas(`"a,b",0`))
	assert.Equal(t, "A,", spaceCommas("A,"))
}

func TestSplitFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty", line: "", want: []string{""}},
		{name: "plain", line: "MOV A,B ;c", want: []string{"MOV", "A,B", ";c"}},
		{name: "quoted spaces", line: `DW "a b" ;c`, want: []string{"DW", `"a b"`, ";c"}},
		{name: "quoted operand in a list", line: `MOV A,#"  "`, want: []string{"MOV", `A,#"  "`}},
		{name: "unterminated literal", line: `DB "abc  ;; x`, want: []string{"DB", `"abc  ;; x`}},
		{name: "padding yields empty tokens", line: "INC  A", want: []string{"INC", "", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := splitFields(tt.line)
			assert.Equal(t, tt.want, f.tokens)
			assert.Equal(t, tt.line, strings.Join(f.tokens, " "))
		})
	}
}
