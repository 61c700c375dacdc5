package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "label and instruction", in: "LBL: MOV A,B", want: []string{"LBL:", "MOV A,B"}},
		{name: "label without space", in: "LBL:NOP", want: []string{"LBL:", "NOP"}},
		{name: "label with spaces in name", in: "MAIN LOOP: NOP", want: []string{"MAIN LOOP:", "NOP"}},
		{name: "label alone", in: "LBL:", want: []string{"LBL:"}},
		{name: "label with comment stays", in: "LBL: ; entry", want: []string{"LBL: ; entry"}},
		{name: "label with DB stays", in: `LBL: DB "text"`, want: []string{`LBL: DB "text"`}},
		{name: "label with DS stays", in: "BUF: DS 16", want: []string{"BUF: DS 16"}},
		{name: "chained labels", in: "A: B: NOP", want: []string{"A:", "B:", "NOP"}},
		{name: "chained labels ending in data", in: "A: B: DB 1", want: []string{"A:", "B: DB 1"}},
		{name: "chained labels only", in: "A: B:", want: []string{"A:", "B:"}},
		{name: "no label", in: "MOV A,B", want: []string{"MOV A,B"}},
		{name: "colon after punctuation is not a label", in: "MOV A,#':'", want: []string{"MOV A,#':'"}},
		{name: "blank", in: "", want: []string{""}},
	}

	vocab := defaultVocab()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, splitLabel(tt.in, vocab))
		})
	}
}

func TestCollapseBlankRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "no blanks", in: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "single blank kept", in: []string{"a", "", "b"}, want: []string{"a", "", "b"}},
		{name: "run collapsed", in: []string{"a", "", "", "", "b"}, want: []string{"a", "", "b"}},
		{name: "leading and trailing runs", in: []string{"", "", "a", "", ""}, want: []string{"", "a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, collapseBlankRuns(tt.in))
		})
	}
}
