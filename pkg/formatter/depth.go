package formatter

import "strings"

// DepthState is the block-nesting state carried from one line to the next
// within a single file. The zero value is the state at the start of a file.
//
// Depth counts open blocks. IfDepth counts open conditionals; only the
// outermost conditional contributes to Depth, so nested conditionals share
// one indentation level. SawLabel is set by a label line and held until a
// reset keyword. InBanner is set by a banner line and cleared by the next
// blank or non-comment line.
type DepthState struct {
	Depth    int
	IfDepth  int
	SawLabel bool
	InBanner bool
}

// lineShape is what the depth transitions need to know about a line.
type lineShape struct {
	field0    string
	field1    string
	isLabel   bool
	isComment bool
	isBanner  bool
}

func shapeOf(line string, vocab *vocabulary) lineShape {
	f := splitFields(line)
	kind := vocab.classify(line)
	return lineShape{
		field0:    f.field0,
		field1:    f.field1,
		isLabel:   kind == KindLabel,
		isComment: kind == KindComment || kind == KindBanner,
		isBanner:  kind == KindBanner,
	}
}

// layout holds the per-file settings the depth transitions depend on.
type layout struct {
	vocab          *vocabulary
	indentWidth    int
	minIndentation int
	indentLabels   bool
}

// blank applies a blank line: it only ends a banner block.
func (s *DepthState) blank() {
	s.InBanner = false
}

// step applies one non-blank line and returns the number of spaces it is
// indented by. The order of the transitions is fixed: banner and label
// bookkeeping, block close, label reset, label indent, clamp, prefix, block
// open. A block-opening line is therefore printed at the depth outside the
// block it opens, and a block-closing line at the depth outside the block
// it closes.
func (s *DepthState) step(shape lineShape, lay layout) int {
	s.enter(shape)
	s.applyDecrease(shape, lay.vocab)
	s.applyLabelReset(shape, lay.vocab)
	s.applyLabelIndent(lay.indentLabels)
	s.clamp()
	prefix := s.prefix(shape, lay)
	s.applyIncrease(shape, lay.vocab)
	return prefix
}

// enter updates the banner and label flags for the incoming line.
func (s *DepthState) enter(shape lineShape) {
	if s.InBanner && !shape.isComment {
		s.InBanner = false
	}
	if shape.isBanner {
		s.InBanner = true
	}
	if shape.isLabel {
		s.SawLabel = true
	}
}

// applyDecrease closes a block. Closing a conditional only dedents when the
// outermost conditional closes. A conditional close with no open
// conditional is treated as a plain block close.
func (s *DepthState) applyDecrease(shape lineShape, vocab *vocabulary) {
	if !vocab.decrease.hasAny(shape.field0, shape.field1) {
		return
	}

	if shape.field0 == vocab.conditionalClose && s.IfDepth > 0 {
		s.IfDepth--
		if s.IfDepth == 0 {
			s.Depth--
		}
		return
	}
	s.Depth--
}

// applyLabelReset ends label-triggered indentation at a structural marker.
func (s *DepthState) applyLabelReset(shape lineShape, vocab *vocabulary) {
	if !s.SawLabel {
		return
	}
	if vocab.resetLabel.hasAny(shape.field0, shape.field1) || shape.isBanner {
		s.SawLabel = false
		s.Depth--
	}
}

// applyLabelIndent opens the temporary level that follows a label.
func (s *DepthState) applyLabelIndent(indentLabels bool) {
	if s.SawLabel && indentLabels && s.Depth == 0 {
		s.Depth++
	}
}

func (s *DepthState) clamp() {
	if s.Depth < 0 {
		s.Depth = 0
	}
	if s.IfDepth < 0 {
		s.IfDepth = 0
	}
}

// prefix computes the indentation of the current line. Dedents are applied
// first, the result is clamped at zero, and only then are the
// minimum-indentation floors applied.
func (s *DepthState) prefix(shape lineShape, lay layout) int {
	vocab := lay.vocab
	indent := lay.indentWidth

	prefix := s.Depth * indent
	if vocab.temporaryDecrease.has(shape.field0) {
		prefix -= indent
	}
	if shape.isLabel || s.InBanner {
		prefix = 0
	}
	if s.IfDepth > 0 && vocab.nestedSameDepth.has(shape.field0) {
		prefix -= indent
	}
	prefix = max(prefix, 0)

	if prefix == 0 &&
		!vocab.noIndent.hasAny(shape.field0, shape.field1) &&
		!vocab.decrease.has(shape.field0) &&
		!shape.isLabel &&
		!shape.isComment {
		prefix = lay.minIndentation * indent
	}

	if prefix == 0 && s.IfDepth > 0 && vocab.indentInIf.hasAny(shape.field0, shape.field1) {
		prefix = lay.minIndentation * indent
	}

	return prefix
}

// applyIncrease opens a block after the current line has been placed.
func (s *DepthState) applyIncrease(shape lineShape, vocab *vocabulary) {
	if !vocab.increase.hasAny(shape.field0, shape.field1) {
		return
	}

	if shape.field0 == vocab.conditionalOpen {
		s.IfDepth++
		if s.IfDepth == 1 {
			s.Depth++
		}
		return
	}
	s.Depth++
}

// indentation returns the number of leading spaces of a formatted line.
func indentation(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
