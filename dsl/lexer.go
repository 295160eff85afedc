package dsl

import (
	"math"
	"strings"
)

// blankIndent marks a line with no content: it never terminates a
// sibling/child boundary and is skipped when a block is walked, mirroring
// spec.md §4.3's "empty lines are ignored" while still letting
// blank lines appear freely inside an indented child block.
const blankIndent = math.MaxInt32

// splitLines normalizes line endings and splits into raw lines, grounded
// on rbatis's `arg.lines()` iteration in create_line_space_map/parse_pysql.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return strings.Split(src, "\n")
}

// countSpace returns a line's leading-space indentation, the same
// character-class scan as rbatis's count_space. Blank (whitespace-only)
// lines report blankIndent so they never affect nesting decisions.
func countSpace(line string) int {
	if strings.TrimSpace(line) == "" {
		return blankIndent
	}
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// stripComment removes a line's trailing "//..." comment, per §4.3's
// "ends with ':' (before any inline trailing comment //…)". This is a
// plain substring search, not quote-aware: a template whose SQL text
// itself contains "//" should avoid relying on trailing comments on
// that line.
func stripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}

// isCommentLine reports a line that is nothing but a "//" comment,
// which contributes no node at all (grounded on rbatis's
// `trim_x.starts_with("//")` early return).
func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "//")
}
