package dynasql

import (
	"strings"

	"github.com/dynasql/dynasql/dsl"
	"github.com/dynasql/dynasql/node"
	"github.com/dynasql/dynasql/tagform"
)

// Template is a compiled, ready-to-emit tag tree, with every embedded
// #{…}/${…}/test=/value=/collection= expression already pre-parsed
// into an *expr.AST (§4.5: "the plan ... holds pre-parsed expression
// ASTs"), and every Sql fragment registered under its id so Include
// nodes resolve without re-walking the tree per call.
//
// Grounded on the teacher's Mapper (mapper.go), which holds the same
// two things — a compiled statement tree and a sqlNodes map keyed by
// fragment id — collapsed from a whole namespace of mapper statements
// down to the single freestanding template this module compiles,
// since the mapper-XML/namespace registration machinery around it is
// out of scope.
type Template struct {
	Source string

	nodes     node.NodeGroup
	fragments map[string]node.Node
}

// Compile parses src as either the indentation DSL or the tag form,
// sniffing on the first non-whitespace character per spec.md §6: `<`
// routes to tagform.Parse, anything else to dsl.Parse.
func Compile(src string) (*Template, error) {
	nodes, err := parseSource(src)
	if err != nil {
		return nil, &CompileError{Source: src, Err: err}
	}

	t := &Template{Source: src, nodes: nodes, fragments: map[string]node.Node{}}
	collectFragments(nodes, t.fragments)
	return t, nil
}

func parseSource(src string) (node.NodeGroup, error) {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, "<") {
		return tagform.Parse(strings.NewReader(src))
	}
	return dsl.Parse(src)
}

// SQLNodeByID implements node.Registry, letting an IncludeNode resolve
// against this template's own fragments.
func (t *Template) SQLNodeByID(id string) (node.Node, bool) {
	n, ok := t.fragments[id]
	return n, ok
}

// Nodes returns the compiled tag tree, for callers (the Executor) that
// need to Accept it directly.
func (t *Template) Nodes() node.NodeGroup { return t.nodes }

// collectFragments walks the tree registering every Sql node by id,
// recursing into every node kind that carries children. Node has no
// generic "children" accessor (spec.md's IR is a closed set of kinds,
// not an open Visitor), so this is a type switch over that closed set,
// mirroring how the teacher's own Mapper.setSqlNode is populated once
// per <sql> element encountered while walking parser.go's token loop.
func collectFragments(nodes node.NodeGroup, out map[string]node.Node) {
	for _, n := range nodes {
		switch t := n.(type) {
		case *node.SQLNode:
			out[t.ID] = t
			collectFragments(t.Nodes, out)
		case *node.ConditionNode:
			collectFragments(t.Nodes, out)
		case *node.ChooseNode:
			for _, w := range t.WhenNodes {
				if cond, ok := w.(*node.WhenNode); ok {
					collectFragments(cond.Nodes, out)
				}
			}
			if t.OtherwiseNode != nil {
				if o, ok := t.OtherwiseNode.(*node.OtherwiseNode); ok {
					collectFragments(o.Nodes, out)
				}
			}
		case *node.OtherwiseNode:
			collectFragments(t.Nodes, out)
		case *node.TrimNode:
			collectFragments(t.Nodes, out)
		case *node.WhereNode:
			collectFragments(t.Nodes(), out)
		case *node.SetNode:
			collectFragments(t.Nodes, out)
		case *node.ForeachNode:
			collectFragments(node.NodeGroup(t.Nodes), out)
		case *node.BindNode:
			collectFragments(t.Nodes, out)
		case node.NodeGroup:
			collectFragments(t, out)
		}
	}
}
