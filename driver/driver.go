// Package driver defines the minimal contract an async SQL backend must
// satisfy to sit behind the executor façade: a way to run a query or
// statement, and a way to translate a 0-based parameter ordinal into the
// placeholder text for that backend's SQL dialect.
//
// The teacher's own driver subpackage is not part of this module's
// retrieved reference material — only its call sites survived in
// node/*.go and statement_handler.go (a Translator passed into node
// emission, a Driver exposing Name()/Translator() to the statement
// builder). This package reconstructs that contract from those call
// sites rather than from any teacher source file.
package driver

import (
	"context"

	"github.com/dynasql/dynasql/value"
)

// Style names a family of placeholder syntaxes a Translator can emit.
type Style int

const (
	// Question emits a bare "?" for every ordinal (MySQL, SQLite).
	Question Style = iota
	// Dollar emits "$1", "$2", ... (PostgreSQL).
	Dollar
	// Colon emits ":1", ":2", ... (Oracle-style named ordinals).
	Colon
)

// String names the Style, used as part of the compiled-template cache
// key (a given source digests to a different plan per Style).
func (s Style) String() string {
	switch s {
	case Question:
		return "question"
	case Dollar:
		return "dollar"
	case Colon:
		return "colon"
	default:
		return "unknown"
	}
}

// Translator converts a 0-based parameter ordinal into the placeholder
// text a driver's query planner expects at that position.
type Translator interface {
	// Translate returns the placeholder text for the ordinal-th bound
	// parameter (0-based). Implementations are stateless with respect
	// to ordinal: calling Translate(2) twice must return the same text.
	Translate(ordinal int) string

	// Style reports which placeholder family this Translator emits.
	Style() Style
}

// questionTranslator emits "?" regardless of ordinal.
type questionTranslator struct{}

func (questionTranslator) Translate(int) string { return "?" }
func (questionTranslator) Style() Style         { return Question }

// dollarTranslator emits "$N" with N = ordinal+1.
type dollarTranslator struct{}

func (dollarTranslator) Translate(ordinal int) string { return "$" + itoa(ordinal+1) }
func (dollarTranslator) Style() Style                 { return Dollar }

// colonTranslator emits ":N" with N = ordinal+1.
type colonTranslator struct{}

func (colonTranslator) Translate(ordinal int) string { return ":" + itoa(ordinal+1) }
func (colonTranslator) Style() Style                 { return Colon }

// QuestionTranslator, DollarTranslator and ColonTranslator are the three
// stock Translator implementations spec.md §6 names.
var (
	QuestionTranslator Translator = questionTranslator{}
	DollarTranslator   Translator = dollarTranslator{}
	ColonTranslator    Translator = colonTranslator{}
)

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Result reports a write statement's outcome.
type Result interface {
	RowsAffected() (int64, error)
	LastInsertID() (int64, error)
}

// Rows is the row-cursor contract the executor needs: a Value-returning
// decode path rather than a Scan-into-pointers one, so a row's columns
// arrive as the same tagged value.Value runtime type every other part
// of a compiled template traffics in (spec.md §6's "the row-decode path
// and the template-argument path share one value model").
type Rows interface {
	// Next advances to the next row, reporting whether one exists.
	Next() bool

	// ColumnCount reports how many columns the current row has.
	ColumnCount() int

	// ColumnName returns the i-th column's name (0-based).
	ColumnName(i int) string

	// ColumnType returns the backend's native type name for the i-th
	// column ("INTEGER", "VARCHAR", ...), for callers that want to
	// branch on it before calling Get.
	ColumnType(i int) string

	// Get decodes the i-th column of the current row into a
	// value.Value, coercing the backend's native Go representation via
	// value.Of.
	Get(i int) (value.Value, error)

	// Err reports any error encountered advancing the cursor.
	Err() error

	// Close releases the cursor.
	Close() error
}

// Driver is the backend contract the executor façade calls through.
// A Driver is expected to be safe for concurrent use by multiple
// goroutines (spec.md §5: "the executor itself holds no mutable
// per-call state").
type Driver interface {
	// Name identifies the driver for logging/error messages ("sqlmock",
	// "postgres", ...).
	Name() string

	// DefaultPlaceholder reports the placeholder Style this driver uses
	// when none is explicitly configured.
	DefaultPlaceholder() Style

	// Query executes a read statement and returns a row cursor.
	Query(ctx context.Context, query string, args []any) (Rows, error)

	// Exec executes a write statement and returns its outcome.
	Exec(ctx context.Context, query string, args []any) (Result, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// TranslatorForStyle returns the stock Translator matching style,
// letting a caller turn a Driver's DefaultPlaceholder() Style into a
// usable Translator without a type switch of its own.
func TranslatorForStyle(style Style) (Translator, bool) {
	switch style {
	case Question:
		return QuestionTranslator, true
	case Dollar:
		return DollarTranslator, true
	case Colon:
		return ColonTranslator, true
	default:
		return nil, false
	}
}
