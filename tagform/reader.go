// Package tagform reads and writes the canonical XML tag form of a
// compiled template (spec.md §4.4), the wire-stable counterpart to the
// dsl package's indentation form. Grounded on the teacher's
// encoding/xml.Decoder-driven parser.go: a token loop dispatching on
// xml.StartElement/xml.CharData/xml.EndElement, one parseX function per
// tag kind, rather than xml.Unmarshal — Token()-based reading tolerates
// attribute values like test="age < 18" that a literal Unmarshal of
// surrounding markup would need extra care for.
package tagform

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/node"
)

// Parse reads one tag form document and returns its root node tree.
// The document's outermost content (text and tags, not wrapped in any
// single top-level element) is parsed the same way a tag's children
// are, mirroring the teacher's per-mapper statement body parsing.
func Parse(r io.Reader) (node.NodeGroup, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	return parseBody(dec, "")
}

// parseBody consumes tokens until it sees the EndElement matching
// until (or EOF, when until is ""), collecting CharData as StringNodes
// and StartElements as their corresponding tag nodes.
func parseBody(dec *xml.Decoder, until string) (node.NodeGroup, error) {
	var out node.NodeGroup
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if until != "" {
				return nil, fmt.Errorf("tagform: unexpected EOF, expected </%s>", until)
			}
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.CharData:
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			s, err := node.NewStringNode(text)
			if err != nil {
				return nil, err
			}
			out = append(out, s)

		case xml.StartElement:
			n, err := parseTag(dec, t)
			if err != nil {
				return nil, err
			}
			out = append(out, n)

		case xml.EndElement:
			if t.Name.Local != until {
				return nil, fmt.Errorf("tagform: unexpected </%s>, expected </%s>", t.Name.Local, until)
			}
			return out, nil
		}
	}
}

// parseTag dispatches a single StartElement to its node kind, per
// §4.4's canonical tag-form mapping. Mirrors the teacher's parseTags
// switch on token.Name.Local, generalized with the bind/continue/break
// tags this module's IR has and the teacher's doesn't, and without the
// teacher's out-of-scope values/alias statement-level elements.
func parseTag(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	switch start.Name.Local {
	case "if":
		return parseIf(dec, start)
	case "when":
		return parseWhen(dec, start)
	case "otherwise":
		return parseOtherwise(dec, start)
	case "choose":
		return parseChoose(dec, start)
	case "trim":
		return parseTrim(dec, start)
	case "where":
		return parseWhere(dec, start)
	case "set":
		return parseSet(dec, start)
	case "foreach":
		return parseForeach(dec, start)
	case "bind":
		return parseBind(dec, start)
	case "sql":
		return parseSQL(dec, start)
	case "include":
		return parseInclude(dec, start)
	case "continue":
		if err := skipToEnd(dec, start.Name.Local); err != nil {
			return nil, err
		}
		return node.ContinueNode{}, nil
	case "break":
		if err := skipToEnd(dec, start.Name.Local); err != nil {
			return nil, err
		}
		return node.BreakNode{}, nil
	default:
		return nil, fmt.Errorf("tagform: unknown tag <%s>", start.Name.Local)
	}
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func skipToEnd(dec *xml.Decoder, localName string) error {
	_, err := parseBody(dec, localName)
	return err
}

func parseExprAttr(start xml.StartElement, name string) (*expr.AST, error) {
	src := attr(start, name)
	ast, err := expr.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("tagform: <%s %s=%q>: %w", start.Name.Local, name, src, err)
	}
	return ast, nil
}

func parseIf(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	test, err := parseExprAttr(start, "test")
	if err != nil {
		return nil, err
	}
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return &node.IfNode{Test: test, Nodes: children}, nil
}

func parseWhen(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	test, err := parseExprAttr(start, "test")
	if err != nil {
		return nil, err
	}
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return &node.WhenNode{Test: test, Nodes: children}, nil
}

func parseOtherwise(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return &node.OtherwiseNode{Nodes: children}, nil
}

func parseChoose(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	c := &node.ChooseNode{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("tagform: unexpected EOF inside <choose>")
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, fmt.Errorf("tagform: <choose> may only contain <when>/<otherwise>")
			}
		case xml.StartElement:
			switch t.Name.Local {
			case "when":
				w, err := parseWhen(dec, t)
				if err != nil {
					return nil, err
				}
				c.WhenNodes = append(c.WhenNodes, w)
			case "otherwise":
				o, err := parseOtherwise(dec, t)
				if err != nil {
					return nil, err
				}
				c.OtherwiseNode = o
			default:
				return nil, fmt.Errorf("tagform: <choose> may only contain <when>/<otherwise>, got <%s>", t.Name.Local)
			}
		case xml.EndElement:
			if t.Name.Local != start.Name.Local {
				return nil, fmt.Errorf("tagform: unexpected </%s> inside <choose>", t.Name.Local)
			}
			return c, nil
		}
	}
}

func parseTrim(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return &node.TrimNode{
		Nodes:           children,
		Prefix:          attr(start, "prefix"),
		Suffix:          attr(start, "suffix"),
		PrefixOverrides: splitOverrides(attr(start, "prefixOverrides")),
		SuffixOverrides: splitOverrides(attr(start, "suffixOverrides")),
	}, nil
}

// splitOverrides splits a "|"-delimited override list, keeping each
// token's whitespace (so "and |or " yields "and " and "or ", and " |,"
// yields " " and ","; see DESIGN.md's "|,"-split Open Question). Empty
// tokens are dropped.
func splitOverrides(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseWhere(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return node.NewWhereNode(children), nil
}

func parseSet(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	s := &node.SetNode{Nodes: children, Collection: attr(start, "collection")}
	if skips := attr(start, "skips"); skips != "" {
		s.Skips = map[string]bool{}
		for _, k := range strings.Split(skips, ",") {
			k = strings.TrimSpace(k)
			if k != "" {
				s.Skips[k] = true
			}
		}
	}
	s.SkipNull = attr(start, "skipNull") == "true"
	return s, nil
}

func parseForeach(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	collection, err := parseExprAttr(start, "collection")
	if err != nil {
		return nil, err
	}
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return &node.ForeachNode{
		Collection: collection,
		Nodes:      children,
		Item:       attr(start, "item"),
		Index:      attr(start, "index"),
		Open:       attr(start, "open"),
		Close:      attr(start, "close"),
		Separator:  attr(start, "separator"),
	}, nil
}

func parseBind(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	value, err := parseExprAttr(start, "value")
	if err != nil {
		return nil, err
	}
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return &node.BindNode{Name: attr(start, "name"), Value: value, Nodes: children}, nil
}

// parseSQL rejects an id containing '.', mirroring the teacher's own
// "sql id can not contain '.'" guard in parser.go.
func parseSQL(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	id := attr(start, "id")
	if strings.Contains(id, ".") {
		return nil, fmt.Errorf("tagform: sql id can not contain '.': %q", id)
	}
	children, err := parseBody(dec, start.Name.Local)
	if err != nil {
		return nil, err
	}
	return &node.SQLNode{ID: id, Nodes: children}, nil
}

func parseInclude(dec *xml.Decoder, start xml.StartElement) (node.Node, error) {
	if err := skipToEnd(dec, start.Name.Local); err != nil {
		return nil, err
	}
	return &node.IncludeNode{RefID: attr(start, "refid")}, nil
}
