package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/asmfmt/pkg/config"
)

// Kind is the shape of a logical line.
type Kind int

const (
	// KindBlank is an empty line.
	KindBlank Kind = iota
	// KindComment is a line starting with the comment marker.
	KindComment
	// KindBanner is a comment line starting with the banner marker.
	KindBanner
	// KindLabel is a label alone on its line, optionally followed by a comment.
	KindLabel
	// KindCode is any other line: instructions, directives, labelled data.
	KindCode
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindBanner:
		return "banner"
	case KindLabel:
		return "label"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// tokenSet is a set of exact-match keywords.
type tokenSet map[string]struct{}

func newTokenSet(tokens ...[]string) tokenSet {
	set := make(tokenSet)
	for _, group := range tokens {
		for _, tok := range group {
			if tok != "" {
				set[tok] = struct{}{}
			}
		}
	}
	return set
}

func (s tokenSet) has(tok string) bool {
	if tok == "" {
		return false
	}
	_, ok := s[tok]
	return ok
}

// hasAny reports whether either field is in the set.
func (s tokenSet) hasAny(field0, field1 string) bool {
	return s.has(field0) || s.has(field1)
}

// vocabulary is the compiled, read-only form of config.Keywords.
type vocabulary struct {
	comment          string
	banner           string
	conditionalOpen  string
	conditionalClose string

	noIndent          tokenSet
	indentInIf        tokenSet
	increase          tokenSet
	decrease          tokenSet
	temporaryDecrease tokenSet
	nestedSameDepth   tokenSet
	resetLabel        tokenSet

	labelNoBreak []string
	spaceAfter   []string
}

func newVocabulary(kw config.Keywords, indentMacros bool) *vocabulary {
	vocab := &vocabulary{
		comment:           kw.Comment,
		banner:            kw.Banner,
		conditionalOpen:   kw.ConditionalOpen,
		conditionalClose:  kw.ConditionalClose,
		noIndent:          newTokenSet(kw.NoIndent),
		indentInIf:        newTokenSet(kw.IndentInIf),
		increase:          newTokenSet(kw.Increase),
		decrease:          newTokenSet(kw.Decrease),
		temporaryDecrease: newTokenSet(kw.TemporaryDecrease),
		nestedSameDepth:   newTokenSet(kw.NestedSameDepth),
		resetLabel:        newTokenSet(kw.ResetLabel),
		labelNoBreak:      kw.LabelNoBreak,
		spaceAfter:        kw.SpaceAfter,
	}
	if vocab.comment == "" {
		vocab.comment = ";"
	}
	if indentMacros {
		vocab.increase = newTokenSet(kw.Increase, []string{kw.MacroOpen})
		vocab.decrease = newTokenSet(kw.Decrease, []string{kw.MacroClose})
	}
	return vocab
}

// isComment reports whether a cleaned line is a comment, banners included.
func (v *vocabulary) isComment(line string) bool {
	return strings.HasPrefix(line, v.comment)
}

// isBanner reports whether a cleaned line opens or continues a banner block.
func (v *vocabulary) isBanner(line string) bool {
	return v.banner != "" && strings.HasPrefix(line, v.banner)
}

// classify returns the shape of a line. Leading indentation is ignored so
// the same function serves cleaned and formatted lines.
func (v *vocabulary) classify(line string) Kind {
	line = strings.TrimLeft(line, " ")
	switch {
	case line == "":
		return KindBlank
	case v.isBanner(line):
		return KindBanner
	case v.isComment(line):
		return KindComment
	}

	f := splitFields(line)
	if strings.HasSuffix(f.field0, ":") && (!f.hasField1 || strings.HasPrefix(f.field1, v.comment)) {
		return KindLabel
	}
	return KindCode
}

// fields is the whitespace-delimited view of a cleaned line.
type fields struct {
	tokens    []string
	field0    string
	field1    string
	hasField1 bool
}

// splitFields splits on single spaces outside double-quoted literals, so a
// literal is always one token. Cleaned lines only contain single spaces
// outside literals, and joining tokens with " " restores the line.
func splitFields(line string) fields {
	tokens := make([]string, 0, strings.Count(line, " ")+1)
	start := 0
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			inQuote = !inQuote
		case line[i] == ' ' && !inQuote:
			tokens = append(tokens, line[start:i])
			start = i + 1
		}
	}
	tokens = append(tokens, line[start:])

	f := fields{tokens: tokens, field0: tokens[0]}
	if len(tokens) > 1 {
		f.field1 = tokens[1]
		f.hasField1 = true
	}
	return f
}

// displayWidth is the number of terminal cells s occupies.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// indexUnquoted returns the byte index of the first occurrence of sep that
// is not inside a double-quoted literal, or -1.
func indexUnquoted(s, sep string) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			inQuote = !inQuote
			continue
		}
		if !inQuote && strings.HasPrefix(s[i:], sep) {
			return i
		}
	}
	return -1
}

// containsUnquoted reports whether sep occurs outside double-quoted literals.
func containsUnquoted(s, sep string) bool {
	return indexUnquoted(s, sep) >= 0
}
