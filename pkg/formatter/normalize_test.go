package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/asmfmt/pkg/config"
)

func defaultVocab() *vocabulary {
	return newVocabulary(config.DefaultKeywords(), false)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t  ", want: ""},
		{name: "trims surrounding whitespace", in: "   NOP   ", want: "NOP"},
		{name: "carriage return", in: "NOP\r", want: "NOP"},
		{name: "collapses space runs", in: "MOV    A,B", want: "MOV A,B"},
		{name: "collapses tab runs", in: "\tMOV\t\tA,B", want: "MOV A,B"},
		{name: "mixed tabs and spaces", in: "MOV \t A,B", want: "MOV A,B"},
		{name: "drops spaces after commas", in: "MOV A,   B", want: "MOV A,B"},
		{name: "operand list", in: "PUSH  R0,  R1,R2", want: "PUSH R0,R1,R2"},
		{name: "collapses semicolon runs in code", in: "NOP ;;;; done", want: "NOP ; done"},
		{name: "inline comment commas lose spaces", in: "NOP ;a,  b", want: "NOP ;a,b"},
		{name: "comment line keeps comma spacing", in: "; a,  b", want: "; a,  b"},
		{name: "comment line semicolons", in: ";;;; title ;; sub", want: "; title ; sub"},
		{name: "comment line keeps inner spaces", in: ";  two  spaces", want: ";  two  spaces"},
		{name: "comment line tabs", in: ";\tx\t\ty", want: "; x y"},
		{name: "banner kept", in: ";**** Init ****", want: ";**** Init ****"},
		{name: "quoted spaces preserved", in: `DB   "a  ,  b"`, want: `DB "a  ,  b"`},
		{name: "quoted semicolons preserved", in: `DB ";;"  ;; c`, want: `DB ";;" ; c`},
		{name: "unterminated literal passes through", in: `DB "abc  ;; x`, want: `DB "abc  ;; x`},
		{name: "set directive gets a space", in: "$set(DEBUG)", want: "$set (DEBUG)"},
		{name: "set directive with space unchanged", in: "$set (DEBUG)", want: "$set (DEBUG)"},
	}

	vocab := defaultVocab()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := normalize(tt.in, vocab)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\t")
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	vocab := defaultVocab()
	inputs := []string{
		"MOV    A,  B ;;  c",
		"\t\tLCALL\tDELAY",
		`DB "x ,  y" ,  3`,
		";;;;  banner  ;;",
		"$set(X)",
	}

	for _, in := range inputs {
		once := normalize(in, vocab)
		assert.Equal(t, once, normalize(once, vocab), "input %q", in)
	}
}

func TestCollapseTabs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", collapseTabs("a\tb"))
	assert.Equal(t, "a b c", collapseTabs("a\t\t\tb\tc"))
	assert.Equal(t, "none", collapseTabs("none"))
}

func TestKeywordMatchingIsCaseSensitive(t *testing.T) {
	t.Parallel()

	vocab := defaultVocab()
	assert.True(t, vocab.noIndent.has("IF"))
	assert.False(t, vocab.noIndent.has("if"))
	assert.True(t, vocab.noIndent.has("$if"))
	assert.False(t, vocab.noIndent.has(""))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want Kind
	}{
		{"", KindBlank},
		{"   ", KindBlank},
		{"; comment", KindComment},
		{"    ; indented comment", KindComment},
		{";**** banner", KindBanner},
		{"LBL:", KindLabel},
		{"LBL: ; note", KindLabel},
		{`LBL: DB "x"`, KindCode},
		{"MOV A,B", KindCode},
	}

	vocab := defaultVocab()
	for _, tt := range tests {
		assert.Equal(t, tt.want, vocab.classify(tt.line), "line %q", tt.line)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "blank", KindBlank.String())
	assert.Equal(t, "banner", KindBanner.String())
	assert.Equal(t, "code", KindCode.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
