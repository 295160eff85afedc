package dsl

import (
	"strings"

	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/node"
)

// Parse converts DSL source into a tag tree, per spec.md §4.3.
func Parse(src string) (node.NodeGroup, error) {
	return parseBlock(splitLines(src), 1)
}

// parseBlock walks one indentation level's worth of lines (lineOffset is
// the real 1-based source line number of lines[0]), grounded on rbatis's
// NodeType::parse_pysql: for each non-consumed, non-blank line, collect
// any immediately-following more-deeply-indented lines as that line's
// children (recursing into them as their own block), then dispatch the
// line itself.
func parseBlock(lines []string, lineOffset int) (node.NodeGroup, error) {
	indents := make([]int, len(lines))
	for i, l := range lines {
		indents[i] = countSpace(l)
	}

	var out node.NodeGroup
	skip := -1
	for i, raw := range lines {
		if indents[i] == blankIndent {
			continue
		}
		if skip != -1 && i <= skip {
			continue
		}
		if isCommentLine(raw) {
			continue
		}

		childLines, lastChild := findChildLines(lines, indents, i)
		if lastChild != -1 && lastChild >= skip {
			skip = lastChild
		}

		var children node.NodeGroup
		if len(childLines) > 0 {
			var err error
			children, err = parseBlock(childLines, lineOffset+i+1)
			if err != nil {
				return nil, err
			}
		}

		nodes, err := parseLine(raw, lineOffset+i, children)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

// findChildLines collects the run of lines immediately after i whose
// indentation is strictly greater than lines[i]'s, stopping at the first
// line that is not (blank lines never stop the run). It returns those
// lines verbatim (so the recursive parseBlock call sees the same text,
// including any interior blank lines) and the index of the last line
// consumed, or -1 if none were. Grounded on rbatis's find_child_str.
func findChildLines(lines []string, indents []int, i int) ([]string, int) {
	parent := indents[i]
	var childLines []string
	last := -1
	for j := i + 1; j < len(lines); j++ {
		if indents[j] == blankIndent {
			childLines = append(childLines, lines[j])
			last = j
			continue
		}
		if indents[j] <= parent {
			break
		}
		childLines = append(childLines, lines[j])
		last = j
	}
	return childLines, last
}

// parseLine classifies and dispatches a single line. Grounded on
// rbatis's parse_pysql_node: a line ending in ':' (after stripping a
// trailing comment) is a tag line, possibly a ": "-chained sequence of
// tags; anything else is a String node, with this line's already-parsed
// children spliced in as siblings immediately after it (§4.3: "When a
// non-tag line appears where a block was not opened, it becomes a
// sibling String at the current level").
func parseLine(raw string, lineNo int, children node.NodeGroup) (node.NodeGroup, error) {
	line := stripComment(raw)
	trimmed := strings.TrimSpace(line)

	if strings.HasSuffix(trimmed, ":") {
		body := strings.TrimSpace(trimmed[:len(trimmed)-1])

		n, err := parseChainedTag(body, lineNo, children)
		if err != nil {
			return nil, err
		}
		return node.NodeGroup{n}, nil
	}

	indent := countSpace(line)
	start := indent - 1
	if start < 0 {
		start = 0
	}
	if start > len(line) {
		start = len(line)
	}
	s, err := node.NewStringNode(line[start:])
	if err != nil {
		return nil, &ParseError{Line: lineNo, Msg: err.Error()}
	}

	out := node.NodeGroup{s}
	out = append(out, children...)
	return out, nil
}

// parseChainedTag splits body on ": " (right to left) per §4.3's "Chained
// tags on one line": "a: b: c: X" nests as a containing b containing c
// containing X. tokens are resolved innermost-first so each outer token
// wraps the node built from everything to its right.
func parseChainedTag(body string, lineNo int, leaf node.NodeGroup) (node.Node, error) {
	tokens := strings.Split(body, ": ")
	childs := leaf
	var result node.Node
	for i := len(tokens) - 1; i >= 0; i-- {
		n, err := parseTagExpr(tokens[i], lineNo, childs)
		if err != nil {
			return nil, err
		}
		childs = node.NodeGroup{n}
		result = n
	}
	return result, nil
}
