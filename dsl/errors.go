// Package dsl parses the indentation-sensitive template language into a
// node.NodeGroup tag tree (spec.md §4.3), grounded on rbatis-codegen's
// parser_pysql.rs: the same leading-space nesting rule, the same
// right-to-left ": "-chained tag split, and the same leading-keyword
// dispatch table, reimplemented over this module's node/expr packages.
package dsl

import "fmt"

// ParseError is the catch-all malformed-input error: an unquoted sql id,
// a non-string trim argument, an unparseable expression, or any other
// structural defect that doesn't warrant its own error type. It always
// carries the 1-based source line the defect was found on.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dsl: line %d: %s", e.Line, e.Msg)
}

// UnknownTagError is raised when a tag line's leading keyword matches
// none of the recognised tags (§4.3's dispatch table).
type UnknownTagError struct {
	Line int
	Tag  string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("dsl: line %d: unknown tag %q", e.Line, e.Tag)
}

// ForClauseError is raised for a malformed `for ... in ...` tag: missing
// the " in " separator, an empty collection expression, or an
// "index,item" pair that doesn't split into exactly two names.
type ForClauseError struct {
	Line int
	Src  string
}

func (e *ForClauseError) Error() string {
	return fmt.Sprintf("dsl: line %d: malformed for clause: %q", e.Line, e.Src)
}

// BindClauseError is raised for a malformed `bind`/`let` tag: missing
// the `=`, or an empty name/value side of it.
type BindClauseError struct {
	Line int
	Src  string
}

func (e *BindClauseError) Error() string {
	return fmt.Sprintf("dsl: line %d: malformed bind clause: %q", e.Line, e.Src)
}
