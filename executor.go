package dynasql

import (
	"context"

	"github.com/google/uuid"

	"github.com/dynasql/dynasql/cache"
	"github.com/dynasql/dynasql/driver"
	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/node"
	"github.com/dynasql/dynasql/value"
)

// Executor is the module's single call surface (spec.md §4.6): given a
// template source and an argument map, it compiles (or reuses a cached
// compile of) the template, emits it against the arguments, runs the
// intercept chain around the driver call, and returns the driver's
// result.
//
// Grounded on the teacher's sqlRowsExecutor (executor.go), which the
// same way bundled a Statement, a StatementHandler decorator chain, and
// a driver.Driver behind one QueryContext/ExecContext surface; this
// type collapses that trio to a compiled-template cache (in place of
// the teacher's pre-loaded Mapper.statements), an InterceptChain (in
// place of the decorator chain built from MiddlewareGroup), and a
// driver.Driver, since this module compiles templates on demand rather
// than ahead of time from mapper XML.
type Executor struct {
	Driver     driver.Driver
	Translator driver.Translator
	Intercepts InterceptChain

	cache *cache.Cache[*Template]
}

// NewExecutor builds an Executor backed by d, caching up to cacheSize
// compiled templates. translator overrides d.DefaultPlaceholder() when
// non-nil.
func NewExecutor(d driver.Driver, translator driver.Translator, cacheSize int, intercepts ...Intercept) (*Executor, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	if translator == nil {
		var ok bool
		translator, ok = driver.TranslatorForStyle(d.DefaultPlaceholder())
		if !ok {
			return nil, ErrUnsupportedPlaceholderStyle
		}
	}
	c, err := cache.New[*Template](cacheSize, nil)
	if err != nil {
		return nil, &CacheError{Err: err}
	}
	return &Executor{Driver: d, Translator: translator, Intercepts: intercepts, cache: c}, nil
}

// compile returns the *Template compiled from src, consulting the
// cache first and compiling (then caching) on a miss — spec.md §4.6's
// "cache lookup → compile on miss" steps.
func (e *Executor) compile(src string) (*Template, error) {
	key := cache.NewKey(src, e.Translator.Style().String())
	if t, ok := e.cache.Get(key); ok {
		return t, nil
	}
	t, err := Compile(src)
	if err != nil {
		return nil, err
	}
	e.cache.Add(key, t)
	return t, nil
}

// emit runs the compiled template's node tree against args, returning
// the rendered query and its ordered bound parameters (spec.md §4.6's
// "run plan" step).
func (e *Executor) emit(t *Template, args map[string]any) (string, []any, error) {
	root := value.Of(args)
	scope := expr.NewScope(root)
	ctx := &node.Context{Translator: e.Translator, Scope: scope, Registry: t}
	query, params, err := t.Nodes().Accept(ctx)
	if err != nil {
		return "", nil, &EvalError{Template: t.Source, Err: err}
	}
	return query, params, nil
}

// Query compiles (or reuses) src, emits it against args, and runs it
// through the intercept chain around a driver.Query call, per spec.md
// §4.6's 6-step flow.
func (e *Executor) Query(ctx context.Context, src string, args map[string]any) (driver.Rows, error) {
	task, err := e.prepare(ctx, src, args)
	if err != nil {
		return nil, err
	}

	skip, err := e.Intercepts.Before(ctx, task)
	if err != nil {
		return nil, err
	}

	if !skip {
		rows, err := e.Driver.Query(ctx, task.SQL, task.Params)
		if err != nil {
			return nil, err
		}
		task.Result = Outcome{Rows: rows}
	}

	if err := e.Intercepts.After(ctx, task); err != nil {
		return nil, err
	}

	rows, _ := task.Result.Rows.(driver.Rows)
	return rows, nil
}

// Exec compiles (or reuses) src, emits it against args, and runs it
// through the intercept chain around a driver.Exec call.
func (e *Executor) Exec(ctx context.Context, src string, args map[string]any) (driver.Result, error) {
	task, err := e.prepare(ctx, src, args)
	if err != nil {
		return nil, err
	}

	skip, err := e.Intercepts.Before(ctx, task)
	if err != nil {
		return nil, err
	}

	if !skip {
		result, err := e.Driver.Exec(ctx, task.SQL, task.Params)
		if err != nil {
			return nil, err
		}
		task.Result = Outcome{Exec: result}
	}

	if err := e.Intercepts.After(ctx, task); err != nil {
		return nil, err
	}

	result, _ := task.Result.Exec.(driver.Result)
	return result, nil
}

// prepare runs the cache-lookup-or-compile and emit steps shared by
// Query and Exec, and seeds a fresh Task carrying the result of both.
func (e *Executor) prepare(ctx context.Context, src string, args map[string]any) (*Task, error) {
	t, err := e.compile(src)
	if err != nil {
		return nil, err
	}
	query, params, err := e.emit(t, args)
	if err != nil {
		return nil, err
	}
	return &Task{ID: uuid.NewString(), SQL: query, Params: params}, nil
}
