package node

import (
	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/value"
)

// BindNode evaluates Value once on entry, binds Name in the current
// scope for the duration of Nodes, then unwinds the binding (§3's Bind
// row; §4.5's Bind semantics).
type BindNode struct {
	Name  string
	Value *expr.AST
	Nodes NodeGroup
}

func (b *BindNode) Accept(ctx *Context) (query string, args []any, err error) {
	v, err := b.Value.Eval(ctx.Scope)
	if err != nil {
		return "", nil, err
	}
	ctx.Scope.Push(map[string]value.Value{b.Name: v})
	defer ctx.Scope.Pop()
	return b.Nodes.Accept(ctx)
}
