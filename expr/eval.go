package expr

import "github.com/dynasql/dynasql/value"

// Eval walks the AST against scope, producing a Value. Arithmetic and
// comparison are delegated to the value package's operators. Division
// and modulo by zero never fail, but an operator applied to operand
// types it does not support (e.g. Null + 1, or a bitwise operator on
// floats) returns the value package's *OpError. The other failures are
// a non-callable method name, a builtin called with the wrong number of
// arguments, and a structurally incompatible ordering comparison, each
// reported as an *EvalError.
func (a *AST) Eval(scope *Scope) (value.Value, error) {
	return eval(a.root, scope)
}

func eval(n Node, scope *Scope) (value.Value, error) {
	switch t := n.(type) {
	case NumberLit:
		if t.IsFloat {
			return value.F64Value(t.F), nil
		}
		return value.I64Value(t.I), nil
	case StringLit:
		return value.StringValue(t.Val), nil
	case BoolLit:
		return value.BoolValue(t.Val), nil
	case NullLit:
		return value.NullValue(), nil
	case Ident:
		return scope.Get(t.Name), nil
	case Index:
		target, err := eval(t.Target, scope)
		if err != nil {
			return value.NullValue(), err
		}
		key, err := eval(t.Key, scope)
		if err != nil {
			return value.NullValue(), err
		}
		return target.Index(key), nil
	case Call:
		return evalCall(t, scope)
	case Binary:
		return evalBinary(t, scope)
	default:
		return value.NullValue(), &EvalError{Msg: "unknown AST node"}
	}
}

func evalBinary(b Binary, scope *Scope) (value.Value, error) {
	// Short-circuit logical operators: the right side is not evaluated
	// when the result is already determined.
	if b.Op == LAND {
		left, err := eval(b.Left, scope)
		if err != nil {
			return value.NullValue(), err
		}
		if left.IsZero() {
			return value.BoolValue(false), nil
		}
		right, err := eval(b.Right, scope)
		if err != nil {
			return value.NullValue(), err
		}
		return value.BoolValue(right.Bool()), nil
	}
	if b.Op == LOR {
		left, err := eval(b.Left, scope)
		if err != nil {
			return value.NullValue(), err
		}
		if !left.IsZero() {
			return value.BoolValue(true), nil
		}
		right, err := eval(b.Right, scope)
		if err != nil {
			return value.NullValue(), err
		}
		return value.BoolValue(right.Bool()), nil
	}

	left, err := eval(b.Left, scope)
	if err != nil {
		return value.NullValue(), err
	}
	right, err := eval(b.Right, scope)
	if err != nil {
		return value.NullValue(), err
	}

	switch b.Op {
	case PLUS:
		return value.Add(left, right)
	case MINUS:
		if _, ok := b.Left.(NullLit); ok {
			return value.Neg(right)
		}
		return value.Sub(left, right)
	case STAR:
		return value.Mul(left, right)
	case SLASH:
		return value.Div(left, right)
	case PERCENT:
		return value.Mod(left, right)
	case AMP:
		return value.And(left, right)
	case PIPE:
		return value.Or(left, right)
	case CARET:
		return value.Xor(left, right)
	case EQ:
		return value.BoolValue(value.Equal(left, right)), nil
	case NE:
		return value.BoolValue(!value.Equal(left, right)), nil
	case LT, LE, GT, GE:
		cmp, ok := value.Compare(left, right)
		if !ok {
			return value.NullValue(), &EvalError{Msg: "structurally incompatible comparison"}
		}
		switch b.Op {
		case LT:
			return value.BoolValue(cmp < 0), nil
		case LE:
			return value.BoolValue(cmp <= 0), nil
		case GT:
			return value.BoolValue(cmp > 0), nil
		default:
			return value.BoolValue(cmp >= 0), nil
		}
	case NOT:
		// auto-null-insertion: `!x` lowers to Binary{NOT, NullLit, x}.
		return value.Not(right), nil
	default:
		return value.NullValue(), &EvalError{Msg: "unsupported operator " + b.Op.String()}
	}
}
