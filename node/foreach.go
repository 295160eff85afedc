package node

import (
	"errors"

	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/value"
)

// ForeachNode iterates a collection, rebinding Item (and optionally
// Index) in scope for each pass over Nodes, joined by Separator and
// wrapped in Open/Close (§3's Foreach row, §4.5's Foreach semantics).
//
// Per §4.5: a Null or non-Array/non-Map collection contributes no
// output and no parameters (the "Foreach-of-empty" testable property,
// §8) — this is a total operation, never an error, unlike the
// teacher's ForeachNode which errors on an unresolvable or
// non-iterable collection.
type ForeachNode struct {
	Collection *expr.AST
	Nodes      []Node
	Item       string
	Index      string
	Open       string
	Close      string
	Separator  string
}

func (f *ForeachNode) Accept(ctx *Context) (query string, args []any, err error) {
	coll, err := f.Collection.Eval(ctx.Scope)
	if err != nil {
		return "", nil, err
	}
	coll = coll.Inner()

	switch coll.Tag() {
	case value.Array:
		return f.acceptElements(ctx, indexedElements(coll.Elements()))
	case value.Map:
		return f.acceptElements(ctx, entryElements(coll.Entries()))
	default:
		return "", nil, nil
	}
}

// element is one (index, item) pair to bind for a single iteration,
// generalizing over Array's integer index and Map's key.
type element struct {
	index value.Value
	item  value.Value
}

func indexedElements(items []value.Value) []element {
	out := make([]element, len(items))
	for i, v := range items {
		out[i] = element{index: value.I64Value(int64(i)), item: v}
	}
	return out
}

func entryElements(entries []value.Entry) []element {
	out := make([]element, len(entries))
	for i, e := range entries {
		out[i] = element{index: e.Key, item: e.Value}
	}
	return out
}

func (f *ForeachNode) acceptElements(ctx *Context, elems []element) (query string, args []any, err error) {
	if len(elems) == 0 {
		return "", nil, nil
	}

	builder := getStringBuilder()
	defer putStringBuilder(builder)
	builder.WriteString(f.Open)

	last := len(elems) - 1
	for i, el := range elems {
		bindings := map[string]value.Value{}
		if f.Item != "" {
			bindings[f.Item] = el.item
		}
		if f.Index != "" {
			bindings[f.Index] = el.index
		}
		ctx.Scope.Push(bindings)

		q, a, broke, iterErr := f.acceptIteration(ctx)
		ctx.Scope.Pop()
		if iterErr != nil {
			return "", nil, iterErr
		}

		if q != "" {
			if builder.Len() > len(f.Open) && needsGlueSpace(lastRune(builder.String()), firstRune(q)) {
				builder.WriteByte(' ')
			}
			builder.WriteString(q)
		}
		args = append(args, a...)

		if broke {
			break
		}
		if i < last {
			builder.WriteString(f.Separator)
		}
	}

	builder.WriteString(f.Close)
	return builder.String(), args, nil
}

// acceptIteration emits one pass over f.Nodes, stopping early (without
// failing) on Continue or Break; broke reports whether Break fired, so
// the caller can stop iterating entirely rather than just this pass.
func (f *ForeachNode) acceptIteration(ctx *Context) (query string, args []any, broke bool, err error) {
	builder := getStringBuilder()
	defer putStringBuilder(builder)

	for _, n := range f.Nodes {
		q, a, nerr := n.Accept(ctx)
		if nerr != nil {
			if errors.Is(nerr, ErrContinue) {
				break
			}
			if errors.Is(nerr, ErrBreak) {
				broke = true
				break
			}
			return "", nil, false, nerr
		}
		if q != "" {
			if builder.Len() > 0 && needsGlueSpace(lastRune(builder.String()), firstRune(q)) {
				builder.WriteByte(' ')
			}
			builder.WriteString(q)
		}
		args = append(args, a...)
	}
	return builder.String(), args, broke, nil
}
