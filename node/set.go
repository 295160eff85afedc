package node

// SetNode renders the SET clause of an UPDATE statement. §4.5 describes
// two distinct forms sharing one keyword:
//
//   - Attribute form (Collection != ""): expands the named map value
//     into "${k}=#{v}," per entry, skipping keys listed in Skips and,
//     when SkipNull is set, entries whose value is Null; the result is
//     wrapped in Trim(prefix=" set ", suffixOverrides=[","]).
//   - Literal form (Collection == ""): the authored Nodes are wrapped in
//     Trim(prefix=" set ", prefixOverrides=[" ",","], suffixOverrides=[" ",","]),
//     per DESIGN.md's resolution of the "|,"-split Open Question.
type SetNode struct {
	Nodes      NodeGroup
	Collection string
	Skips      map[string]bool
	SkipNull   bool
}

func (s *SetNode) Accept(ctx *Context) (query string, args []any, err error) {
	if s.Collection == "" {
		trim := TrimNode{
			Nodes:           s.Nodes,
			Prefix:          " set ",
			PrefixOverrides: []string{" ", ","},
			SuffixOverrides: []string{" ", ","},
		}
		return trim.Accept(ctx)
	}
	return s.acceptCollection(ctx)
}

func (s *SetNode) acceptCollection(ctx *Context) (query string, args []any, err error) {
	coll := ctx.Scope.Get(s.Collection).Inner()

	builder := getStringBuilder()
	defer putStringBuilder(builder)

	for _, e := range coll.Entries() {
		key := e.Key.String()
		if s.Skips[key] {
			continue
		}
		if s.SkipNull && e.Value.IsNull() {
			continue
		}
		builder.WriteString(key)
		builder.WriteByte('=')
		builder.WriteString(ctx.NextPlaceholder())
		builder.WriteByte(',')
		args = append(args, e.Value.Any())
	}

	buf := stripOneSuffix(builder.String(), []string{","})
	if buf == "" {
		return "", nil, nil
	}
	return " set " + buf, args, nil
}
