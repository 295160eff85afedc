package node

import "github.com/dynasql/dynasql/expr"

// ConditionNode backs both If and When: it emits its children iff Test
// evaluates truthy against the current scope (§3's If/When rows).
type ConditionNode struct {
	Test  *expr.AST
	Nodes NodeGroup
}

// Match reports whether Test is truthy in scope.
func (c *ConditionNode) Match(scope *expr.Scope) (bool, error) {
	v, err := c.Test.Eval(scope)
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

func (c *ConditionNode) Accept(ctx *Context) (query string, args []any, err error) {
	matched, err := c.Match(ctx.Scope)
	if err != nil {
		return "", nil, err
	}
	if !matched {
		return "", nil, nil
	}
	return c.Nodes.Accept(ctx)
}
