package dynasql

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dynasql/dynasql/driver"
	"github.com/dynasql/dynasql/value"
)

// Decode drains rows into a []T, one T per row, matching each column to
// an exported struct field by a `db:"..."` tag or, absent one, the
// field's name (case-insensitive); unmatched columns are ignored. It
// closes rows once exhausted.
//
// This is the "rows decoded into caller-chosen shapes" step spec.md §6
// names as the Executor's final output stage, kept as a freestanding
// generic function rather than a method so a caller can run it over a
// driver.Rows obtained any other way too.
func Decode[T any](rows driver.Rows) ([]T, error) {
	defer func() { _ = rows.Close() }()

	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, &DecodeError{Err: fmt.Errorf("decode target must be a struct, got %T", zero)}
	}
	fields := fieldsByColumn(rt)

	var out []T
	for rows.Next() {
		var row T
		rv := reflect.ValueOf(&row).Elem()
		for i := 0; i < rows.ColumnCount(); i++ {
			name := rows.ColumnName(i)
			idx, ok := fields[strings.ToLower(name)]
			if !ok {
				continue
			}
			v, err := rows.Get(i)
			if err != nil {
				return nil, &DecodeError{Column: name, Err: err}
			}
			if err := setField(rv.Field(idx), v); err != nil {
				return nil, &DecodeError{Column: name, Err: err}
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func fieldsByColumn(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("db")
		if name == "" {
			name = f.Name
		}
		fields[strings.ToLower(name)] = i
	}
	return fields
}

func setField(field reflect.Value, v value.Value) error {
	if !field.CanSet() {
		return nil
	}
	goVal := v.Any()
	if goVal == nil {
		return nil
	}
	rv := reflect.ValueOf(goVal)
	switch {
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case rv.Type().ConvertibleTo(field.Type()):
		field.Set(rv.Convert(field.Type()))
	default:
		return fmt.Errorf("cannot assign %s into field of type %s", rv.Type(), field.Type())
	}
	return nil
}
