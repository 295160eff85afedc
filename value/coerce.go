package value

// domain is the widened numeric domain two operands are promoted into
// before an arithmetic or comparison operator runs, mirroring the
// teacher's per-reflect.Kind operator dispatch
// (IntOperator/UintOperator/FloatOperator/...) but keyed on Tag.
type domain uint8

const (
	domainInvalid domain = iota
	domainBool
	domainSigned
	domainUnsigned
	domainFloat
	domainString
)

// widen picks the operator domain for a pair of operands per §4.1: mixed
// signed/unsigned widen to signed i64 if both fit, otherwise to f64;
// a String on either side makes the whole operation a string operation
// (concatenation uses this to decide when to stringify the other side).
func widen(a, b Value) domain {
	a, b = a.Inner(), b.Inner()
	if a.tag == String || b.tag == String {
		return domainString
	}
	if a.tag == Bool && b.tag == Bool {
		return domainBool
	}
	da, oka := numericDomain(a)
	db, okb := numericDomain(b)
	if !oka || !okb {
		return domainInvalid
	}
	if da == db {
		return da
	}
	// mixed signed/unsigned: widen to signed if both fit, else float.
	if (da == domainSigned && db == domainUnsigned) || (da == domainUnsigned && db == domainSigned) {
		var uval uint64
		if da == domainUnsigned {
			uval = a.u
		} else {
			uval = b.u
		}
		if uval <= 1<<63-1 {
			return domainSigned
		}
		return domainFloat
	}
	return domainFloat
}

func numericDomain(v Value) (domain, bool) {
	switch v.tag {
	case I32, I64:
		return domainSigned, true
	case U32, U64:
		return domainUnsigned, true
	case F32, F64:
		return domainFloat, true
	default:
		return domainInvalid, false
	}
}

func asI64(v Value) int64 {
	v = v.Inner()
	switch v.tag {
	case I32, I64:
		return v.i
	case U32, U64:
		return int64(v.u)
	case F32, F64:
		return int64(v.f)
	case Bool:
		if v.b {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func asU64(v Value) uint64 {
	v = v.Inner()
	switch v.tag {
	case U32, U64:
		return v.u
	case I32, I64:
		return uint64(v.i)
	case F32, F64:
		return uint64(v.f)
	default:
		return 0
	}
}

func asF64(v Value) float64 {
	v = v.Inner()
	switch v.tag {
	case F32, F64:
		return v.f
	case I32, I64:
		return float64(v.i)
	case U32, U64:
		return float64(v.u)
	default:
		return 0
	}
}

// resultTag picks the Tag a signed/unsigned/float operation's result
// should carry: the wider of the two operand tags within the domain.
func resultTag(a, b Value, d domain) Tag {
	a, b = a.Inner(), b.Inner()
	switch d {
	case domainSigned:
		if a.tag == I64 || b.tag == I64 {
			return I64
		}
		return I32
	case domainUnsigned:
		if a.tag == U64 || b.tag == U64 {
			return U64
		}
		return U32
	case domainFloat:
		if a.tag == F64 || b.tag == F64 {
			return F64
		}
		return F32
	default:
		return Null
	}
}

func fromDomain(d domain, tag Tag, i int64, u uint64, f float64) Value {
	switch d {
	case domainSigned:
		if tag == I64 {
			return I64Value(i)
		}
		return I32Value(int32(i))
	case domainUnsigned:
		if tag == U64 {
			return U64Value(u)
		}
		return U32Value(uint32(u))
	case domainFloat:
		if tag == F64 {
			return F64Value(f)
		}
		return F32Value(float32(f))
	default:
		return NullValue()
	}
}
