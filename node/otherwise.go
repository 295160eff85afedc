package node

// OtherwiseNode is Choose's default branch, emitted when no When
// matched (§3's Otherwise row).
type OtherwiseNode struct {
	Nodes NodeGroup
}

func (o *OtherwiseNode) Accept(ctx *Context) (query string, args []any, err error) {
	return o.Nodes.Accept(ctx)
}
