// Package sqlmock adapts github.com/DATA-DOG/go-sqlmock to the driver.Driver
// contract, giving the executor façade a backend that can be driven in
// tests without a real database connection.
package sqlmock

import (
	"context"
	"database/sql"
	"fmt"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/dynasql/dynasql/driver"
	"github.com/dynasql/dynasql/value"
)

// Driver wraps a *sql.DB backed by sqlmock.
type Driver struct {
	db    *sql.DB
	mock  sqlmock.Sqlmock
	style driver.Style
}

// New creates a mocked database connection using sqlmock's question-mark
// placeholder convention (sqlmock itself is placeholder-agnostic, but
// ExpectQuery/ExpectExec match regexes against the literal query text, so
// the style used to compile a template must match what the test's
// expectations were written against).
func New() (*Driver, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}
	return &Driver{db: db, mock: mock, style: driver.Question}, mock, nil
}

func (d *Driver) Name() string { return "sqlmock" }

func (d *Driver) DefaultPlaceholder() driver.Style { return d.style }

func (d *Driver) Query(ctx context.Context, query string, args []any) (driver.Rows, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	cols, err := rows.ColumnTypes()
	if err != nil {
		_ = rows.Close()
		return nil, err
	}
	return &rowsAdapter{rows: rows, cols: cols}, nil
}

func (d *Driver) Exec(ctx context.Context, query string, args []any) (driver.Result, error) {
	result, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return resultAdapter{result}, nil
}

func (d *Driver) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close releases the underlying *sql.DB; tests should defer this after New.
func (d *Driver) Close() error { return d.db.Close() }

// resultAdapter renames database/sql.Result's LastInsertId to the
// driver.Result contract's LastInsertID.
type resultAdapter struct {
	sql.Result
}

func (r resultAdapter) LastInsertID() (int64, error) { return r.Result.LastInsertId() }

// rowsAdapter decodes each column through database/sql's generic Scan
// into a value.Value, rather than exposing Scan directly, so the
// executor's decode path carries the same tagged runtime value every
// other part of a compiled template does.
type rowsAdapter struct {
	rows *sql.Rows
	cols []*sql.ColumnType

	current []any
	scanned bool
}

func (r *rowsAdapter) Next() bool {
	r.scanned = false
	r.current = nil
	return r.rows.Next()
}

func (r *rowsAdapter) ColumnCount() int { return len(r.cols) }

func (r *rowsAdapter) ColumnName(i int) string { return r.cols[i].Name() }

func (r *rowsAdapter) ColumnType(i int) string { return r.cols[i].DatabaseTypeName() }

func (r *rowsAdapter) scanCurrent() error {
	if r.scanned {
		return nil
	}
	dest := make([]any, len(r.cols))
	ptrs := make([]any, len(r.cols))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		return err
	}
	r.current = dest
	r.scanned = true
	return nil
}

func (r *rowsAdapter) Get(i int) (value.Value, error) {
	if err := r.scanCurrent(); err != nil {
		return value.Value{}, err
	}
	if i < 0 || i >= len(r.current) {
		return value.Value{}, fmt.Errorf("sqlmock: column index %d out of range", i)
	}
	return value.Of(r.current[i]), nil
}

func (r *rowsAdapter) Err() error { return r.rows.Err() }

func (r *rowsAdapter) Close() error { return r.rows.Close() }
