package node

// WhereNode is sugar for Trim(prefix=" where ", suffix="",
// prefix_overrides=["and ","AND ","or ","OR "], suffix_overrides=[])
// per §3/§4.5. It is implemented by literally constructing that Trim.
type WhereNode struct {
	trim TrimNode
}

// NewWhereNode wraps nodes in the canonical Where trim shape.
func NewWhereNode(nodes NodeGroup) *WhereNode {
	return &WhereNode{trim: TrimNode{
		Nodes:           nodes,
		Prefix:          " where ",
		PrefixOverrides: []string{"and ", "AND ", "or ", "OR "},
	}}
}

func (w *WhereNode) Accept(ctx *Context) (query string, args []any, err error) {
	return w.trim.Accept(ctx)
}

// Nodes returns the wrapped children, needed by tagform's writer to
// re-emit a <where>...</where> element.
func (w *WhereNode) Nodes() NodeGroup { return w.trim.Nodes }
