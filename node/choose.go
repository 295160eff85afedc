package node

// ChooseNode evaluates each When in order and emits the first whose
// test is truthy; if none match, it falls back to Otherwise when
// present. At most one branch ever emits (the "Choose first-match"
// testable property, §8).
type ChooseNode struct {
	WhenNodes     []Node
	OtherwiseNode Node
}

func (c *ChooseNode) Accept(ctx *Context) (query string, args []any, err error) {
	for _, w := range c.WhenNodes {
		cond, ok := w.(*WhenNode)
		if !ok {
			// non-ConditionNode branches (shouldn't occur from either
			// parser, but kept total rather than panicking) are treated
			// as always matching once reached.
			return w.Accept(ctx)
		}
		matched, merr := cond.Match(ctx.Scope)
		if merr != nil {
			return "", nil, merr
		}
		if matched {
			return cond.Nodes.Accept(ctx)
		}
	}
	if c.OtherwiseNode != nil {
		return c.OtherwiseNode.Accept(ctx)
	}
	return "", nil, nil
}
