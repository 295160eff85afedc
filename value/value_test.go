package value_test

import (
	"testing"

	"github.com/dynasql/dynasql/value"
)

func TestIsZero(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"null", value.NullValue(), true},
		{"zero-int", value.I64Value(0), true},
		{"nonzero-int", value.I64Value(1), false},
		{"empty-string", value.StringValue(""), true},
		{"string-true", value.StringValue("true"), false},
		{"string-false", value.StringValue("false"), true},
		{"other-string", value.StringValue("x"), false},
		{"empty-array", value.ArrayValue(nil), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.IsZero(); got != c.want {
				t.Errorf("IsZero() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDivByZeroIsTotal(t *testing.T) {
	v, err := value.Div(value.I64Value(10), value.I64Value(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tag() != value.I64 || !v.IsZero() {
		t.Fatalf("expected zero I64, got %v", v)
	}

	fv, err := value.Div(value.F64Value(10), value.F64Value(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fv.Tag() != value.F64 || !fv.IsZero() {
		t.Fatalf("expected zero F64, got %v", fv)
	}
}

func TestModByZeroIsTotal(t *testing.T) {
	v, err := value.Mod(value.I32Value(5), value.I32Value(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsZero() {
		t.Fatalf("expected zero, got %v", v)
	}
}

func TestMixedSignWidening(t *testing.T) {
	v, err := value.Add(value.I32Value(5), value.U32Value(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "8" {
		t.Fatalf("expected 8, got %v", v.String())
	}
}

func TestStringConcat(t *testing.T) {
	v, err := value.Add(value.StringValue("a"), value.I64Value(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "a1" {
		t.Fatalf("expected a1, got %q", v.String())
	}
}

func TestEqualityAcrossNumericDomains(t *testing.T) {
	if !value.Equal(value.I32Value(2), value.F64Value(2)) {
		t.Fatalf("expected 2 == 2.0")
	}
	if value.Equal(value.NullValue(), value.I64Value(0)) {
		t.Fatalf("Null should not equal 0")
	}
	if !value.Equal(value.NullValue(), value.NullValue()) {
		t.Fatalf("Null should equal Null")
	}
}

func TestMapIndexMissingIsNull(t *testing.T) {
	m := value.MapValue([]value.Entry{{Key: value.StringValue("a"), Value: value.I64Value(1)}})
	if got := m.Index(value.StringValue("missing")); !got.IsNull() {
		t.Fatalf("expected Null for missing key, got %v", got)
	}
}

func TestMapDuplicateKeyLastWins(t *testing.T) {
	m := value.MapValue([]value.Entry{
		{Key: value.StringValue("a"), Value: value.I64Value(1)},
		{Key: value.StringValue("a"), Value: value.I64Value(2)},
	})
	got := m.Index(value.StringValue("a"))
	if got.String() != "2" {
		t.Fatalf("expected last insertion to win, got %v", got.String())
	}
}

func TestArrayIndex(t *testing.T) {
	arr := value.ArrayValue([]value.Value{value.I64Value(10), value.I64Value(20)})
	if got := arr.Index(value.I64Value(1)); got.String() != "20" {
		t.Fatalf("expected 20, got %v", got.String())
	}
	if got := arr.Index(value.I64Value(5)); !got.IsNull() {
		t.Fatalf("expected Null for out-of-range index")
	}
}

func TestExtDelegatesToInner(t *testing.T) {
	id, err := value.ParseUUID("123e4567-e89b-12d3-a456-426614174000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Tag() != value.Ext || id.ExtTag() != "Uuid" {
		t.Fatalf("expected Ext(Uuid,...), got %v", id)
	}
	other, _ := value.ParseUUID("123e4567-e89b-12d3-a456-426614174000")
	if !value.Equal(id, other) {
		t.Fatalf("expected equal UUID values")
	}
}

func TestCompareIncompatibleNotOk(t *testing.T) {
	_, ok := value.Compare(value.MapValue(nil), value.MapValue(nil))
	if ok {
		t.Fatalf("expected Map comparison to be not-orderable")
	}
}
