package value

import (
	"errors"
	"fmt"
)

// OpError reports that an operator could not be applied to a pair of
// operands, mirroring the shape of the teacher's expr.NewOperationError
// (eval/expr, reconstructed from executor_additional_test.go) but keyed
// on value.Tag rather than reflect.Kind.
type OpError struct {
	Op       string
	Left     Tag
	Right    Tag
	Detail   string
}

func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid operation %s: %s (%s, %s)", e.Op, e.Detail, e.Left, e.Right)
	}
	return fmt.Sprintf("invalid operation %s between %s and %s", e.Op, e.Left, e.Right)
}

// ErrNotCallable names the failure of a method-call expression whose
// target isn't one of the builtin callables. Nothing in this module
// returns it: the expr evaluator reports that case as an *expr.EvalError.
var ErrNotCallable = errors.New("value: not callable")

func opError(op string, a, b Value) error {
	return &OpError{Op: op, Left: a.Tag(), Right: b.Tag()}
}

// Add implements +; String on either side means concatenation with the
// other side's display form (§4.1).
func Add(a, b Value) (Value, error) {
	d := widen(a, b)
	switch d {
	case domainString:
		ai, bi := a.Inner(), b.Inner()
		return StringValue(ai.String() + bi.String()), nil
	case domainSigned:
		return fromDomain(d, resultTag(a, b, d), asI64(a)+asI64(b), 0, 0), nil
	case domainUnsigned:
		return fromDomain(d, resultTag(a, b, d), 0, asU64(a)+asU64(b), 0), nil
	case domainFloat:
		return fromDomain(d, resultTag(a, b, d), 0, 0, asF64(a)+asF64(b)), nil
	default:
		return NullValue(), opError("+", a, b)
	}
}

func Sub(a, b Value) (Value, error) {
	d := widen(a, b)
	switch d {
	case domainSigned:
		return fromDomain(d, resultTag(a, b, d), asI64(a)-asI64(b), 0, 0), nil
	case domainUnsigned:
		return fromDomain(d, resultTag(a, b, d), 0, asU64(a)-asU64(b), 0), nil
	case domainFloat:
		return fromDomain(d, resultTag(a, b, d), 0, 0, asF64(a)-asF64(b)), nil
	default:
		return NullValue(), opError("-", a, b)
	}
}

func Mul(a, b Value) (Value, error) {
	d := widen(a, b)
	switch d {
	case domainSigned:
		return fromDomain(d, resultTag(a, b, d), asI64(a)*asI64(b), 0, 0), nil
	case domainUnsigned:
		return fromDomain(d, resultTag(a, b, d), 0, asU64(a)*asU64(b), 0), nil
	case domainFloat:
		return fromDomain(d, resultTag(a, b, d), 0, 0, asF64(a)*asF64(b)), nil
	default:
		return NullValue(), opError("*", a, b)
	}
}

// Div implements / with the rbatis-grounded zero-divisor rule (see
// DESIGN.md "Open Question decisions" #2): division by zero yields the
// zero value of the result domain rather than erroring, keeping emission
// total as §4.1 requires.
func Div(a, b Value) (Value, error) {
	d := widen(a, b)
	tag := resultTag(a, b, d)
	switch d {
	case domainSigned:
		rhs := asI64(b)
		if rhs == 0 {
			return fromDomain(d, tag, 0, 0, 0), nil
		}
		return fromDomain(d, tag, asI64(a)/rhs, 0, 0), nil
	case domainUnsigned:
		rhs := asU64(b)
		if rhs == 0 {
			return fromDomain(d, tag, 0, 0, 0), nil
		}
		return fromDomain(d, tag, 0, asU64(a)/rhs, 0), nil
	case domainFloat:
		rhs := asF64(b)
		if rhs == 0 {
			return fromDomain(d, tag, 0, 0, 0), nil
		}
		return fromDomain(d, tag, 0, 0, asF64(a)/rhs), nil
	default:
		return NullValue(), opError("/", a, b)
	}
}

// Mod implements % with the same never-fails zero-divisor rule as Div.
func Mod(a, b Value) (Value, error) {
	d := widen(a, b)
	tag := resultTag(a, b, d)
	switch d {
	case domainSigned:
		rhs := asI64(b)
		if rhs == 0 {
			return fromDomain(d, tag, 0, 0, 0), nil
		}
		return fromDomain(d, tag, asI64(a)%rhs, 0, 0), nil
	case domainUnsigned:
		rhs := asU64(b)
		if rhs == 0 {
			return fromDomain(d, tag, 0, 0, 0), nil
		}
		return fromDomain(d, tag, 0, asU64(a)%rhs, 0), nil
	case domainFloat:
		rhs := asF64(b)
		if rhs == 0 {
			return fromDomain(d, tag, 0, 0, 0), nil
		}
		af, bf := asF64(a), asF64(b)
		return fromDomain(d, tag, 0, 0, af-bf*float64(int64(af/bf))), nil
	default:
		return NullValue(), opError("%", a, b)
	}
}

func bitwise(op string, a, b Value, f func(x, y uint64) uint64) (Value, error) {
	d := widen(a, b)
	switch d {
	case domainSigned, domainUnsigned:
		return fromDomain(domainUnsigned, resultTag(a, b, domainUnsigned), 0, f(asU64(a), asU64(b)), 0), nil
	default:
		return NullValue(), opError(op, a, b)
	}
}

func And(a, b Value) (Value, error) { return bitwise("&", a, b, func(x, y uint64) uint64 { return x & y }) }
func Or(a, b Value) (Value, error)  { return bitwise("|", a, b, func(x, y uint64) uint64 { return x | y }) }
func Xor(a, b Value) (Value, error) { return bitwise("^", a, b, func(x, y uint64) uint64 { return x ^ y }) }

// Land/Lor implement short-circuit-free logical && / ||; callers that
// need short-circuit evaluation (the expr evaluator) check IsZero on the
// left operand before evaluating the right and only call these when both
// sides are already evaluated.
func Land(a, b Value) Value { return BoolValue(a.Bool() && b.Bool()) }
func Lor(a, b Value) Value  { return BoolValue(a.Bool() || b.Bool()) }

// Not implements unary !.
func Not(a Value) Value { return BoolValue(a.IsZero()) }

// Neg implements unary -.
func Neg(a Value) (Value, error) {
	a = a.Inner()
	switch a.tag {
	case I32:
		return I32Value(int32(-a.i)), nil
	case I64:
		return I64Value(-a.i), nil
	case U32:
		return I64Value(-int64(a.u)), nil
	case U64:
		return I64Value(-int64(a.u)), nil
	case F32:
		return F32Value(float32(-a.f)), nil
	case F64:
		return F64Value(-a.f), nil
	default:
		return NullValue(), &OpError{Op: "-", Left: a.tag, Right: a.tag, Detail: "unary"}
	}
}

// Equal implements == using widening equality for numerics (§3: "equality
// across numeric variants is defined by widening to the larger domain...
// with exact comparison"), exact byte comparison for String/Binary, and
// structural comparison for Array/Map. Null equals only Null.
func Equal(a, b Value) bool { return valuesEqual(a, b) }

func valuesEqual(a, b Value) bool {
	a, b = a.Inner(), b.Inner()
	if a.tag == Null || b.tag == Null {
		return a.tag == Null && b.tag == Null
	}
	d := widen(a, b)
	switch d {
	case domainString:
		return a.String() == b.String()
	case domainSigned:
		return asI64(a) == asI64(b)
	case domainUnsigned:
		return asU64(a) == asU64(b)
	case domainFloat:
		return asF64(a) == asF64(b)
	case domainBool:
		return a.b == b.b
	default:
		if a.tag != b.tag {
			return false
		}
		switch a.tag {
		case Binary:
			return string(a.bin) == string(b.bin)
		case Array:
			if len(a.arr) != len(b.arr) {
				return false
			}
			for i := range a.arr {
				if !valuesEqual(a.arr[i], b.arr[i]) {
					return false
				}
			}
			return true
		case Map:
			if len(a.m) != len(b.m) {
				return false
			}
			for i := range a.m {
				if !valuesEqual(a.m[i].Key, b.m[i].Key) || !valuesEqual(a.m[i].Value, b.m[i].Value) {
					return false
				}
			}
			return true
		default:
			return false
		}
	}
}

// Compare returns -1, 0, 1 for a<b, a==b, a>b. ok is false when the pair
// is not orderable (e.g. Map vs Map), in which case callers treat the
// comparison as an EvalError (see DESIGN.md Open Question #3).
func Compare(a, b Value) (result int, ok bool) {
	a, b = a.Inner(), b.Inner()
	d := widen(a, b)
	switch d {
	case domainString:
		as, bs := a.String(), b.String()
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		default:
			return 0, true
		}
	case domainSigned:
		x, y := asI64(a), asI64(b)
		return cmpInt(x, y), true
	case domainUnsigned:
		x, y := asU64(a), asU64(b)
		return cmpUint(x, y), true
	case domainFloat:
		x, y := asF64(a), asF64(b)
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

func cmpInt(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func cmpUint(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
