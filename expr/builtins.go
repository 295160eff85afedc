package expr

import (
	"strings"

	"github.com/dynasql/dynasql/value"
)

// evalCall dispatches method-call syntax x.f(y, z) and the bare
// now() free function to the small builtin set §4.2 describes
// ("callable identifiers are a small builtin set ... provided by the
// runtime"), grounded on spec.md's own examples plus rbatis's
// rbatis-sql-util/src/func.rs helper surface (see DESIGN.md).
func evalCall(c Call, scope *Scope) (value.Value, error) {
	args := make([]value.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := eval(a, scope)
		if err != nil {
			return value.NullValue(), err
		}
		args[i] = v
	}

	if c.Target == nil {
		switch c.Method {
		case "now":
			return nowValue(), nil
		default:
			return value.NullValue(), &EvalError{Msg: "not callable: " + c.Method}
		}
	}

	target, err := eval(c.Target, scope)
	if err != nil {
		return value.NullValue(), err
	}
	target = target.Inner()

	switch c.Method {
	case "len":
		return value.I64Value(int64(target.Len())), nil
	case "contains":
		if len(args) != 1 {
			return value.NullValue(), &EvalError{Msg: "contains() takes exactly one argument"}
		}
		return value.BoolValue(containsValue(target, args[0])), nil
	case "starts_with":
		if len(args) != 1 {
			return value.NullValue(), &EvalError{Msg: "starts_with() takes exactly one argument"}
		}
		return value.BoolValue(strings.HasPrefix(target.String(), args[0].String())), nil
	case "ends_with":
		if len(args) != 1 {
			return value.NullValue(), &EvalError{Msg: "ends_with() takes exactly one argument"}
		}
		return value.BoolValue(strings.HasSuffix(target.String(), args[0].String())), nil
	case "upper":
		return value.StringValue(strings.ToUpper(target.String())), nil
	case "lower":
		return value.StringValue(strings.ToLower(target.String())), nil
	default:
		return value.NullValue(), &EvalError{Msg: "not callable: " + c.Method}
	}
}

func containsValue(target, needle value.Value) bool {
	switch target.Tag() {
	case value.Array:
		for _, e := range target.Elements() {
			if value.Equal(e, needle) {
				return true
			}
		}
		return false
	case value.Map:
		for _, e := range target.Entries() {
			if value.Equal(e.Key, needle) {
				return true
			}
		}
		return false
	default:
		return strings.Contains(target.String(), needle.String())
	}
}

// nowValue is overridable for tests; production callers get the wall
// clock via time.Now formatted as RFC3339, tagged Ext("DateTime", ...).
var nowValue = defaultNow
