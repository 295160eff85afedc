package node

import "errors"

// ErrContinue and ErrBreak are the sentinel "errors" ContinueNode and
// BreakNode raise to unwind out of the current Foreach iteration (or
// loop entirely); ForeachNode.acceptIteration is the only place that
// catches them. Neither the teacher nor any driver call site needs
// loop control, so this pair has no teacher analog — grounded instead
// on rbatis's ContinueTagNode (syntax_tree_pysql), which signals the
// same thing to its own Foreach walker.
var (
	ErrContinue = errors.New("dynasql: continue current foreach iteration")
	ErrBreak    = errors.New("dynasql: break enclosing foreach")
)

// ContinueNode skips the remainder of the current Foreach iteration.
type ContinueNode struct{}

func (ContinueNode) Accept(ctx *Context) (query string, args []any, err error) {
	return "", nil, ErrContinue
}

// BreakNode exits the nearest enclosing Foreach.
type BreakNode struct{}

func (BreakNode) Accept(ctx *Context) (query string, args []any, err error) {
	return "", nil, ErrBreak
}
