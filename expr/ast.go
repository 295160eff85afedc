package expr

// AST is the immutable, evaluable output of Parse. It is stored by value
// inside the compiled emission plan so templates may be shared across
// concurrent calls without locking (§5: "Value model: immutable by
// convention").
type AST struct {
	root Node
	src  string
}

// Source returns the original expression text the AST was parsed from,
// needed anywhere an expression must be re-serialized verbatim (e.g.
// tagform's canonical `test="…"` attribute rendering).
func (a *AST) Source() string { return a.src }

// Node is implemented by every expression AST node kind.
type Node interface {
	isNode()
}

type NumberLit struct {
	IsFloat bool
	I       int64
	F       float64
}

type StringLit struct{ Val string }

type BoolLit struct{ Val bool }

type NullLit struct{}

// Ident is a bare identifier. Resolution (§4.2) is: the reserved names
// "arg"/"args" yield the whole root scope map; any other name not bound
// locally resolves to root[name].
type Ident struct{ Name string }

// Index implements both a.b member access and a[b] subscript access —
// both lower to the same IR, per §3's "dotted paths a.b.c in expressions
// lower to repeated [...]".
type Index struct {
	Target Node
	Key    Node
}

// Call implements method-call syntax x.f(y, z), and the bare free
// function now(). A nil Target means a free function call.
type Call struct {
	Target Node
	Method string
	Args   []Node
}

// Binary is every binary operator, including the auto-null-insertion
// rewriting of a unary prefix operator into a binary one with a NullLit
// left operand (§4.2: "-1 == -a tokenizes to (null - 1) == (null - a)").
type Binary struct {
	Op    Kind
	Left  Node
	Right Node
}

func (NumberLit) isNode() {}
func (StringLit) isNode() {}
func (BoolLit) isNode()   {}
func (NullLit) isNode()   {}
func (Ident) isNode()     {}
func (Index) isNode()     {}
func (Call) isNode()      {}
func (Binary) isNode()    {}
