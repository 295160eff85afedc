package node

import (
	"github.com/dynasql/dynasql/driver"
	"github.com/dynasql/dynasql/expr"
)

// Context threads the state a single emission pass needs: the active
// placeholder Translator, the current variable Scope, and a running
// count of placeholders already emitted (so Translator.Translate sees
// the correct global ordinal even though emission recurses through
// nested Nodes — the teacher's Translator call sites pass a local
// index per statement build; here that index lives on Context instead
// of being threaded as an extra return value through every Accept).
type Context struct {
	Translator driver.Translator
	Scope      *expr.Scope
	Registry   Registry

	ordinal int
}

// NewContext starts a fresh emission pass rooted at scope.
func NewContext(translator driver.Translator, scope *expr.Scope) *Context {
	return &Context{Translator: translator, Scope: scope}
}

// NextPlaceholder returns the placeholder token for the next bound
// parameter and advances the ordinal counter. Called exactly once per
// `#{…}` evaluated (the param-order law in spec.md §8).
func (c *Context) NextPlaceholder() string {
	tok := c.Translator.Translate(c.ordinal)
	c.ordinal++
	return tok
}

// Node is the fundamental interface for every tag-tree IR element: a
// parsed template reduces to a tree of Nodes, and emitting a statement
// walks that tree once, producing a prepared-statement SQL fragment and
// its ordered bound parameters.
type Node interface {
	// Accept emits this node's SQL fragment against ctx, returning the
	// bound args in the exact order their placeholders appear in query.
	Accept(ctx *Context) (query string, args []any, err error)
}

// NodeGroup wraps a sequence of sibling Nodes into a single Node,
// concatenating their emitted fragments.
type NodeGroup []Node

// Accept emits every child and joins their fragments. Unlike the
// teacher's NodeGroup.Accept — which unconditionally inserts a space
// between every pair of children — this applies the no-identifier-glue
// policy: a space is inserted between two fragments only when omitting
// it would fuse the trailing character of one fragment with the leading
// character of the next into a single identifier token (both are
// letters, digits, or underscore). Two fragments already separated by
// punctuation, or by the child's own trailing/leading whitespace, are
// joined with nothing extra.
func (g NodeGroup) Accept(ctx *Context) (query string, args []any, err error) {
	switch len(g) {
	case 0:
		return "", nil, nil
	case 1:
		return g[0].Accept(ctx)
	}

	builder := getStringBuilder()
	defer putStringBuilder(builder)

	for _, n := range g {
		q, a, err := n.Accept(ctx)
		if err != nil {
			return "", nil, err
		}
		if len(q) == 0 {
			continue
		}
		if builder.Len() > 0 && needsGlueSpace(lastRune(builder.String()), firstRune(q)) {
			builder.WriteByte(' ')
		}
		builder.WriteString(q)
		if len(a) > 0 {
			args = append(args, a...)
		}
	}

	if builder.Len() == 0 {
		return "", nil, nil
	}
	return builder.String(), args, nil
}

// needsGlueSpace reports whether two adjacent fragment-boundary runes
// would fuse into one identifier token if concatenated directly.
func needsGlueSpace(left, right rune) bool {
	if left == 0 || right == 0 {
		return false
	}
	return isIdentRune(left) && isIdentRune(right)
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	r := []rune(s)
	return r[len(r)-1]
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r := []rune(s)
	return r[0]
}
