package tagform

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dynasql/dynasql/node"
)

// Write renders nodes as canonical tag form XML (spec.md §4.4), the
// inverse of Parse. There is no teacher analog for this direction — the
// teacher only ever reads mapper XML, it never writes it back out —
// so this is grounded on rbatis's to_html step, which performs the same
// tag-tree-to-markup projection for its own IR.
func Write(w io.Writer, nodes node.NodeGroup) error {
	b := &strings.Builder{}
	if err := writeGroup(b, nodes); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders nodes as canonical tag form XML and returns it directly.
func String(nodes node.NodeGroup) (string, error) {
	b := &strings.Builder{}
	if err := writeGroup(b, nodes); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeGroup(b *strings.Builder, nodes node.NodeGroup) error {
	for _, n := range nodes {
		if err := writeNode(b, n); err != nil {
			return err
		}
	}
	return nil
}

// writeNode dispatches a single Node to its tag-form element, per
// §4.4's canonical mapping. *node.IfNode and *node.WhenNode are the
// same underlying *node.ConditionNode type (they are Go type aliases),
// so a standalone ConditionNode reached here (i.e. not already handled
// as one of a Choose's WhenNodes) is always rendered <if>.
func writeNode(b *strings.Builder, n node.Node) error {
	switch t := n.(type) {
	case *node.StringNode:
		raw := t.Raw()
		// Parse reads adjacent text back as one run, so the space the
		// emitter glues between two identifier characters is written here.
		const identChars = "_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
		if s := b.String(); s != "" && raw != "" &&
			strings.IndexByte(identChars, s[len(s)-1]) >= 0 && strings.IndexByte(identChars, raw[0]) >= 0 {
			b.WriteByte(' ')
		}
		b.WriteString(raw)
		return nil

	case *node.ConditionNode:
		return writeElem(b, "if", map[string]string{"test": t.Test.Source()}, t.Nodes)

	case *node.ChooseNode:
		b.WriteString("<choose>")
		for _, w := range t.WhenNodes {
			cond, ok := w.(*node.WhenNode)
			if !ok {
				return fmt.Errorf("tagform: choose branch is not a when node")
			}
			if err := writeElem(b, "when", map[string]string{"test": cond.Test.Source()}, cond.Nodes); err != nil {
				return err
			}
		}
		if t.OtherwiseNode != nil {
			o, ok := t.OtherwiseNode.(*node.OtherwiseNode)
			if !ok {
				return fmt.Errorf("tagform: choose otherwise is not an otherwise node")
			}
			if err := writeElem(b, "otherwise", nil, o.Nodes); err != nil {
				return err
			}
		}
		b.WriteString("</choose>")
		return nil

	case *node.OtherwiseNode:
		return writeElem(b, "otherwise", nil, t.Nodes)

	case *node.TrimNode:
		attrs := map[string]string{}
		if t.Prefix != "" {
			attrs["prefix"] = t.Prefix
		}
		if t.Suffix != "" {
			attrs["suffix"] = t.Suffix
		}
		if len(t.PrefixOverrides) > 0 {
			attrs["prefixOverrides"] = strings.Join(t.PrefixOverrides, "|")
		}
		if len(t.SuffixOverrides) > 0 {
			attrs["suffixOverrides"] = strings.Join(t.SuffixOverrides, "|")
		}
		return writeElem(b, "trim", attrs, t.Nodes)

	case *node.WhereNode:
		return writeElem(b, "where", nil, t.Nodes())

	case *node.SetNode:
		attrs := map[string]string{}
		if t.Collection != "" {
			attrs["collection"] = t.Collection
			if len(t.Skips) > 0 {
				keys := make([]string, 0, len(t.Skips))
				for k := range t.Skips {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				attrs["skips"] = strings.Join(keys, ",")
			}
			if t.SkipNull {
				attrs["skipNull"] = "true"
			}
		}
		return writeElem(b, "set", attrs, t.Nodes)

	case *node.ForeachNode:
		attrs := map[string]string{"collection": t.Collection.Source()}
		if t.Item != "" {
			attrs["item"] = t.Item
		}
		if t.Index != "" {
			attrs["index"] = t.Index
		}
		if t.Open != "" {
			attrs["open"] = t.Open
		}
		if t.Close != "" {
			attrs["close"] = t.Close
		}
		if t.Separator != "" {
			attrs["separator"] = t.Separator
		}
		return writeElem(b, "foreach", attrs, node.NodeGroup(t.Nodes))

	case *node.BindNode:
		attrs := map[string]string{"name": t.Name, "value": t.Value.Source()}
		return writeElem(b, "bind", attrs, t.Nodes)

	case *node.SQLNode:
		return writeElem(b, "sql", map[string]string{"id": t.ID}, t.Nodes)

	case *node.IncludeNode:
		b.WriteString(fmt.Sprintf("<include refid=%q/>", t.RefID))
		return nil

	case node.ContinueNode:
		b.WriteString("<continue/>")
		return nil

	case node.BreakNode:
		b.WriteString("<break/>")
		return nil

	case node.NodeGroup:
		return writeGroup(b, t)

	default:
		return fmt.Errorf("tagform: cannot render node of type %T", n)
	}
}

// writeElem renders a <name attr="...">children</name> element,
// self-closing it when there are no children (e.g. a leaf <bind/>).
// Attributes are written in knownAttrOrder's fixed order (via
// attrOrder), not Go's randomized map iteration order; an attribute
// name missing from that list is not written.
func writeElem(b *strings.Builder, name string, attrs map[string]string, children node.NodeGroup) error {
	b.WriteByte('<')
	b.WriteString(name)
	for _, k := range attrOrder(attrs) {
		fmt.Fprintf(b, " %s=%q", k, attrs[k])
	}
	if len(children) == 0 {
		b.WriteString("/>")
		return nil
	}
	b.WriteByte('>')
	if err := writeGroup(b, children); err != nil {
		return err
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return nil
}

// attrOrder gives attrs a stable, spec-matching emission order rather
// than Go's randomized map iteration order.
var knownAttrOrder = []string{
	"test", "name", "value", "collection", "item", "index",
	"open", "close", "separator", "prefix", "suffix",
	"prefixOverrides", "suffixOverrides", "skips", "skipNull", "id",
}

func attrOrder(attrs map[string]string) []string {
	out := make([]string, 0, len(attrs))
	for _, k := range knownAttrOrder {
		if _, ok := attrs[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
