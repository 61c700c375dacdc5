// Package formatter implements the asmfmt line pipeline.
//
// A source file is processed in passes, each a pure function of its input:
//
//  1. Every raw line is normalized (tabs, space runs, semicolon runs, comma spacing).
//  2. "LABEL: INSTRUCTION" lines are split into a label line and an instruction line.
//  3. Runs of blank lines collapse to a single blank line.
//  4. The cleaned lines are scanned once for the mnemonic and operand column widths.
//  5. The layout pass drives a DepthState over every line and aligns fields.
//  6. Optionally, comment runs are re-indented to match the code below them.
//
// Formatter.Clean runs passes 1 to 3, and Formatter.Normalize,
// Formatter.SplitLabel and Formatter.CollectWidths expose single passes.
//
// Lines are plain strings. Their shape (blank, comment, banner, label, code)
// is recomputed from the text wherever it is needed and never stored.
// A Formatter holds only read-only options, so one instance may format
// many files concurrently.
package formatter
