package dsl

import (
	"strings"

	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/node"
)

// parseTagExpr dispatches a single (already colon-stripped) tag
// expression to its node kind, per §4.3's leading-keyword table.
// Grounded on rbatis's parse_trim_node, reimplemented over this module's
// node/expr packages instead of rbatis's syntax_tree node types.
func parseTagExpr(tag string, lineNo int, children node.NodeGroup) (node.Node, error) {
	tag = strings.TrimSpace(tag)

	switch {
	case hasKeyword(tag, "if"):
		src := strings.TrimSpace(tag[len("if"):])
		ast, err := expr.Parse(src)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: "if: " + err.Error()}
		}
		return &node.IfNode{Test: ast, Nodes: children}, nil

	case hasKeyword(tag, "for"):
		return parseForTag(tag, lineNo, children)

	case hasKeyword(tag, "trim"):
		return parseTrimTag(tag, lineNo, children)

	case tag == "choose":
		return parseChooseTag(children, lineNo)

	case hasKeyword(tag, "when"):
		src := strings.TrimSpace(tag[len("when"):])
		ast, err := expr.Parse(src)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: "when: " + err.Error()}
		}
		return &node.WhenNode{Test: ast, Nodes: children}, nil

	case tag == "otherwise" || tag == "_":
		return &node.OtherwiseNode{Nodes: children}, nil

	case hasKeyword(tag, "bind"):
		return parseBindTag(tag[len("bind"):], lineNo, children)

	case hasKeyword(tag, "let"):
		return parseBindTag(tag[len("let"):], lineNo, children)

	case hasKeyword(tag, "set"):
		return parseSetTag(tag[len("set"):], lineNo, children)

	case tag == "where":
		return node.NewWhereNode(children), nil

	case tag == "continue":
		return node.ContinueNode{}, nil

	case tag == "break":
		return node.BreakNode{}, nil

	case hasKeyword(tag, "sql"):
		return parseSQLTag(tag[len("sql"):], lineNo, children)

	default:
		return nil, &UnknownTagError{Line: lineNo, Tag: tag}
	}
}

// hasKeyword reports whether s starts with kw as a whole leading word:
// either s == kw, or kw is immediately followed by a space.
func hasKeyword(s, kw string) bool {
	if !strings.HasPrefix(s, kw) {
		return false
	}
	rest := s[len(kw):]
	return rest == "" || rest[0] == ' '
}

func parseForTag(tag string, lineNo int, children node.NodeGroup) (node.Node, error) {
	rest := strings.TrimSpace(tag[len("for"):])
	const inSep = " in "
	idx := strings.Index(rest, inSep)
	if idx < 0 {
		return nil, &ForClauseError{Line: lineNo, Src: tag}
	}
	itemPart := strings.TrimSpace(rest[:idx])
	collSrc := strings.TrimSpace(rest[idx+len(inSep):])
	if itemPart == "" || collSrc == "" {
		return nil, &ForClauseError{Line: lineNo, Src: tag}
	}

	item := itemPart
	index := ""
	if strings.Contains(itemPart, ",") {
		parts := strings.Split(itemPart, ",")
		if len(parts) != 2 {
			return nil, &ForClauseError{Line: lineNo, Src: tag}
		}
		index = strings.TrimSpace(parts[0])
		item = strings.TrimSpace(parts[1])
		if index == "" || item == "" {
			return nil, &ForClauseError{Line: lineNo, Src: tag}
		}
	}

	collAST, err := expr.Parse(collSrc)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Msg: "for: " + err.Error()}
	}
	return &node.ForeachNode{Collection: collAST, Nodes: children, Item: item, Index: index}, nil
}

func parseTrimTag(tag string, lineNo int, children node.NodeGroup) (node.Node, error) {
	rest := strings.TrimSpace(tag[len("trim"):])
	if len(rest) < 2 || rest[0] != '\'' || rest[len(rest)-1] != '\'' {
		return nil, &ParseError{Line: lineNo, Msg: "trim: argument must be a quoted string, got " + rest}
	}
	override := rest[1 : len(rest)-1]
	return &node.TrimNode{
		Nodes:           children,
		PrefixOverrides: []string{override},
		SuffixOverrides: []string{override},
	}, nil
}

func parseChooseTag(children node.NodeGroup, lineNo int) (node.Node, error) {
	c := &node.ChooseNode{}
	for _, ch := range children {
		switch w := ch.(type) {
		case *node.WhenNode:
			c.WhenNodes = append(c.WhenNodes, w)
		case *node.OtherwiseNode:
			c.OtherwiseNode = w
		default:
			return nil, &ParseError{Line: lineNo, Msg: "choose: children must be when/otherwise tags"}
		}
	}
	return c, nil
}

func parseBindTag(rest string, lineNo int, children node.NodeGroup) (node.Node, error) {
	rest = strings.TrimSpace(rest)
	idx := strings.Index(rest, "=")
	if idx < 0 {
		return nil, &BindClauseError{Line: lineNo, Src: rest}
	}
	name := strings.TrimSpace(rest[:idx])
	valSrc := strings.TrimSpace(rest[idx+1:])
	if name == "" || valSrc == "" {
		return nil, &BindClauseError{Line: lineNo, Src: rest}
	}
	ast, err := expr.Parse(valSrc)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Msg: "bind: " + err.Error()}
	}
	return &node.BindNode{Name: name, Value: ast, Nodes: children}, nil
}

func parseSetTag(rest string, lineNo int, children node.NodeGroup) (node.Node, error) {
	rest = strings.TrimSpace(rest)
	s := &node.SetNode{Nodes: children}
	if rest == "" {
		return s, nil
	}
	for k, v := range parseAttrs(rest) {
		switch k {
		case "collection":
			s.Collection = v
		case "skip_null":
			s.SkipNull = v == "true"
		case "skips":
			s.Skips = map[string]bool{}
			for _, key := range strings.Split(v, ",") {
				key = strings.TrimSpace(key)
				if key != "" {
					s.Skips[key] = true
				}
			}
		}
	}
	return s, nil
}

func parseSQLTag(rest string, lineNo int, children node.NodeGroup) (node.Node, error) {
	rest = strings.TrimSpace(rest)
	const prefix = "id="
	if !strings.HasPrefix(rest, prefix) {
		return nil, &ParseError{Line: lineNo, Msg: "sql: missing id attribute"}
	}
	val := strings.TrimSpace(rest[len(prefix):])
	if len(val) < 2 {
		return nil, &ParseError{Line: lineNo, Msg: "sql: id must be a quoted string"}
	}
	q := val[0]
	if (q != '\'' && q != '"') || val[len(val)-1] != q {
		return nil, &ParseError{Line: lineNo, Msg: "sql: id must be a quoted string"}
	}
	id := val[1 : len(val)-1]
	if id == "" {
		return nil, &ParseError{Line: lineNo, Msg: "sql: id must not be empty"}
	}
	return &node.SQLNode{ID: id, Nodes: children}, nil
}

// parseAttrs parses a comma-separated "key='value', key2='value2'"
// attribute list, used by `set` and (in spirit) `sql`.
func parseAttrs(s string) map[string]string {
	attrs := map[string]string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.Index(part, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(part[:eq])
		val := strings.TrimSpace(part[eq+1:])
		val = strings.Trim(val, "'\"")
		attrs[key] = val
	}
	return attrs
}
