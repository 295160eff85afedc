package dynasql

import (
	"errors"
	"fmt"

	"github.com/dynasql/dynasql/node"
)

// Sentinel errors every caller can errors.Is against, grounded on the
// teacher's package-level ErrXxx variables in its own errors.go
// (ErrEmptyQuery, ErrNoStatementFound, ...), specialized to this
// module's error kinds (spec.md §7). There is deliberately no
// ErrUnboundParameter: spec.md §3's scope-resolution rule ("get returns
// Null for missing keys") means an unbound identifier is never an
// error condition anywhere in this module — there is no call site that
// could ever return one.
var (
	// ErrUnsupportedPlaceholderStyle is returned when a driver.Driver's
	// DefaultPlaceholder() reports a Style with no stock Translator.
	ErrUnsupportedPlaceholderStyle = errors.New("dynasql: unsupported placeholder style")

	// ErrFragmentNotFound is returned when an include references a sql
	// fragment id that was never registered for the compiled template.
	// Re-exports node.ErrFragmentNotFound, the sentinel actually raised
	// at the include-resolution call site (node/include.go), so callers
	// can errors.Is against either name.
	ErrFragmentNotFound = node.ErrFragmentNotFound

	// ErrNoDriver is returned by NewExecutor when it is given a nil
	// driver.Driver.
	ErrNoDriver = errors.New("dynasql: no driver configured")
)

// CompileError wraps a ParseError/ExprError arising from Compile,
// carrying the template source so callers can report exactly what
// failed to compile. Grounded on the teacher's own wrap-with-%w
// convention (see its nodeUnclosedError/XMLParseError types) rather
// than copying their fields, since those named DSL concepts this
// module's compiler doesn't have (XML line/column, node names).
type CompileError struct {
	Source string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("dynasql: compile: %s", e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// EvalError wraps an error raised while emitting a compiled template
// against a particular argument map — an expression that failed to
// evaluate (division by zero is not among them: it yields the zero
// value of the result type, see value.Div;
// this wraps failures like a Foreach collection expression itself
// erroring, or an include whose fragment id isn't registered).
type EvalError struct {
	Template string
	Err      error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("dynasql: eval: %s", e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// CacheError wraps a failure constructing the Executor's plan cache
// (an invalid size, most commonly).
type CacheError struct {
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("dynasql: cache: %s", e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }

// DecodeError wraps a failure coercing a driver.Rows column's
// value.Value into a caller-requested Go shape (spec.md §7's
// "a row value could not be coerced to the caller-requested shape"),
// raised by Decode.
type DecodeError struct {
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dynasql: decode column %q: %s", e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
