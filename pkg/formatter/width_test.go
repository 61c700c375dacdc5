package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectWidths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  WidthTable
	}{
		{
			name:  "empty file",
			lines: nil,
			want:  WidthTable{},
		},
		{
			name:  "widest mnemonic",
			lines: []string{"NOP", "LCALL DELAY", "MOV A,B"},
			want:  WidthTable{Mnemonic: 5},
		},
		{
			name:  "operand followed by comment counts",
			lines: []string{"LCALL DELAY ;wait", "INC A ;x"},
			want:  WidthTable{Mnemonic: 5, Operand: 5},
		},
		{
			name:  "operand followed by bare marker does not count",
			lines: []string{"INC ACCUM ; note"},
			want:  WidthTable{Mnemonic: 3},
		},
		{
			name:  "comma lists do not count",
			lines: []string{"MOV ACC,B ;c"},
			want:  WidthTable{Mnemonic: 3},
		},
		{
			name:  "labels comments and blanks skipped",
			lines: []string{"VERYLONGLABEL:", "; a very long comment", "", "NOP"},
			want:  WidthTable{Mnemonic: 3},
		},
		{
			name:  "no-indent directives skipped",
			lines: []string{"COUNTER EQU 10", `DB "long string" ;x`, "$include (regs.inc)", "RET"},
			want:  WidthTable{Mnemonic: 3},
		},
		{
			name:  "display width of wide runes",
			lines: []string{"MOV 値値 ;x"},
			want:  WidthTable{Mnemonic: 3, Operand: 4},
		},
	}

	vocab := defaultVocab()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, collectWidths(tt.lines, vocab))
		})
	}
}
