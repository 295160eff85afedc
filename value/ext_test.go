package value

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestUUIDRoundTrips(t *testing.T) {
	id := uuid.New()
	v := UUID(id)
	if v.Tag() != Ext || v.ExtTag() != "Uuid" {
		t.Fatalf("got tag %v/%q, want Ext/Uuid", v.Tag(), v.ExtTag())
	}
	got, err := v.AsUUID()
	if err != nil {
		t.Fatalf("AsUUID: %v", err)
	}
	if got != id {
		t.Fatalf("got %v, want %v", got, id)
	}
}

func TestParseUUIDRejectsGarbage(t *testing.T) {
	if _, err := ParseUUID("not-a-uuid"); err == nil {
		t.Fatalf("expected an error for a malformed UUID string")
	}
}

func TestDecimalRoundTrips(t *testing.T) {
	d := decimal.RequireFromString("19.99")
	v := Decimal(d)
	if v.Tag() != Ext || v.ExtTag() != "Decimal" {
		t.Fatalf("got tag %v/%q, want Ext/Decimal", v.Tag(), v.ExtTag())
	}
	got, err := v.AsDecimal()
	if err != nil {
		t.Fatalf("AsDecimal: %v", err)
	}
	if !got.Equal(d) {
		t.Fatalf("got %v, want %v", got, d)
	}
}

func TestParseDecimalRejectsGarbage(t *testing.T) {
	if _, err := ParseDecimal("not-a-number"); err == nil {
		t.Fatalf("expected an error for a malformed decimal string")
	}
}

func TestDecimalEqualityDelegatesToInnerString(t *testing.T) {
	a := Decimal(decimal.RequireFromString("5"))
	b := Decimal(decimal.RequireFromString("5"))
	if !Equal(a, b) {
		t.Fatalf("expected equal decimal Ext values to compare equal")
	}
}
