package node

import (
	"regexp"
	"sort"

	"github.com/dynasql/dynasql/expr"
)

// placeholderRegex matches #{expr} bound-parameter placeholders.
// Example: #{id}, #{user.name}, #{ids[0]}.
var placeholderRegex = regexp.MustCompile(`#\{([^{}]*)\}`)

// spliceRegex matches ${expr} raw-splice placeholders.
var spliceRegex = regexp.MustCompile(`\$\{([^{}]*)\}`)

// stringToken is one placeholder occurrence pre-parsed into an
// expression AST at compile time, per spec.md §4.5: "the plan ...
// holds pre-parsed expression ASTs for every ... #{…}, and ${…}
// occurrence found in strings."
type stringToken struct {
	start, end int // byte range in the source this token replaces
	isSplice   bool
	ast        *expr.AST
}

// StringNode is a literal SQL fragment that may contain #{…} bound
// placeholders and ${…} raw splices. A fragment with neither is kept
// as a plain string with no per-Accept parsing work.
type StringNode struct {
	raw    string
	tokens []stringToken
}

// NewStringNode parses raw once, at compile time, pre-building the
// expression ASTs any placeholders reference.
func NewStringNode(raw string) (*StringNode, error) {
	type match struct {
		start, end int
		isSplice   bool
		exprSrc    string
	}
	var matches []match
	for _, m := range placeholderRegex.FindAllStringSubmatchIndex(raw, -1) {
		matches = append(matches, match{start: m[0], end: m[1], isSplice: false, exprSrc: raw[m[2]:m[3]]})
	}
	for _, m := range spliceRegex.FindAllStringSubmatchIndex(raw, -1) {
		matches = append(matches, match{start: m[0], end: m[1], isSplice: true, exprSrc: raw[m[2]:m[3]]})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	if len(matches) == 0 {
		return &StringNode{raw: raw}, nil
	}

	tokens := make([]stringToken, 0, len(matches))
	for _, m := range matches {
		ast, err := expr.Parse(m.exprSrc)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, stringToken{start: m.start, end: m.end, isSplice: m.isSplice, ast: ast})
	}
	return &StringNode{raw: raw, tokens: tokens}, nil
}

// Raw returns the original literal text this node was parsed from,
// placeholders and all — needed anywhere the fragment must be
// re-serialized verbatim (e.g. tagform's writer).
func (s *StringNode) Raw() string { return s.raw }

// Accept implements Node.
func (s *StringNode) Accept(ctx *Context) (query string, args []any, err error) {
	if len(s.tokens) == 0 {
		return s.raw, nil, nil
	}

	builder := getStringBuilder()
	defer putStringBuilder(builder)

	last := 0
	for _, t := range s.tokens {
		builder.WriteString(s.raw[last:t.start])
		v, err := t.ast.Eval(ctx.Scope)
		if err != nil {
			return "", nil, err
		}
		if t.isSplice {
			builder.WriteString(v.String())
		} else {
			builder.WriteString(ctx.NextPlaceholder())
			args = append(args, v.Any())
		}
		last = t.end
	}
	builder.WriteString(s.raw[last:])
	return builder.String(), args, nil
}
