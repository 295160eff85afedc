package node

// SQLNode is a named fragment, referenced elsewhere by include (§3's
// Sql row; the include mechanism itself is implementation-defined per
// spec.md, resolved by name through the compiler's fragment registry).
type SQLNode struct {
	ID    string
	Nodes NodeGroup
}

func (s *SQLNode) Accept(ctx *Context) (query string, args []any, err error) {
	return s.Nodes.Accept(ctx)
}
