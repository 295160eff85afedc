package dynasql

import "context"

// Outcome is the executor's mutable result slot (spec.md §6's
// "result_slot"): exactly one of Rows or Exec is set, depending on
// whether the call was a Query or an Exec.
type Outcome struct {
	Rows any // driver.Rows; Executor.Query type-asserts it back
	Exec any // driver.Result
}

// Task carries the mutable state an Intercept's Before/After hook may
// read or rewrite: the SQL text and bound parameters about to be sent
// to the driver, and (after the driver call, or in place of it) the
// Outcome. ID names the call for logging/tracing purposes.
//
// Grounded on spec.md §6's before/after signature
// (`&mut sql, &mut params, result_slot`): Go has no in/out reference
// parameters, so both hooks take *Task and mutate its fields directly
// instead, the same "pass the mutable context object" shape the
// teacher's own StatementHandler decorators use when each wraps the
// next handler in the chain (middleware.go's QueryContext/ExecContext).
type Task struct {
	ID     string
	SQL    string
	Params []any
	Result Outcome
}

// Intercept is the executor façade's two-hook extension point
// (spec.md §6). Before runs immediately after a template is emitted
// into (sql, params) and before the driver is called; returning
// skip=true stops the call from reaching the driver at all, using
// whatever Task.Result already holds (e.g. a caching Intercept that
// populated Result itself) — spec.md's "Some(false) short-circuits
// with the current result slot" and "Some(true) skips the driver call"
// describe the same effect from the Rust original's Option<bool>
// encoding; this module collapses them to the one boolean a Go signature
// needs (recorded as Open Question decision 5 in DESIGN.md). After runs once
// the driver call (or short-circuit) has produced a Result, and may
// rewrite it.
type Intercept interface {
	Before(ctx context.Context, task *Task) (skip bool, err error)
	After(ctx context.Context, task *Task) error
}

// InterceptChain runs a sequence of Intercepts in order, grounded on
// the teacher's MiddlewareGroup (middleware.go): a group of the same
// interface, folding over its members instead of wrapping handlers in
// reverse, since Before/After are direct hooks rather than handler
// decorators.
type InterceptChain []Intercept

// Before runs every Intercept's Before hook in order, stopping (and
// reporting skip=true) the first time one asks to short-circuit.
func (c InterceptChain) Before(ctx context.Context, task *Task) (skip bool, err error) {
	for _, it := range c {
		skip, err = it.Before(ctx, task)
		if err != nil {
			return false, err
		}
		if skip {
			return true, nil
		}
	}
	return false, nil
}

// After runs every Intercept's After hook in order, each seeing the
// Task as the previous one left it.
func (c InterceptChain) After(ctx context.Context, task *Task) error {
	for _, it := range c {
		if err := it.After(ctx, task); err != nil {
			return err
		}
	}
	return nil
}
