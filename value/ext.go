package value

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UUID builds an Ext("Uuid", String(...)) value from a google/uuid.UUID,
// the typed constructor SPEC_FULL.md's "Ext tag registry" section lists
// for the Uuid domain tag.
func UUID(id uuid.UUID) Value {
	return ExtValue("Uuid", StringValue(id.String()))
}

// ParseUUID parses a string into an Ext("Uuid", ...) value; errors mirror
// uuid.Parse's.
func ParseUUID(s string) (Value, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NullValue(), err
	}
	return UUID(id), nil
}

// AsUUID unwraps an Ext("Uuid", ...) value back into a uuid.UUID.
func (v Value) AsUUID() (uuid.UUID, error) {
	return uuid.Parse(v.Inner().String())
}

// Decimal builds an Ext("Decimal", String(...)) value from a
// shopspring/decimal.Decimal. Arithmetic on a Decimal-tagged value
// delegates to the inner String via the generic Ext-op-x rule, but
// callers that need decimal-precision math should unwrap with AsDecimal
// and use decimal.Decimal's own operators directly (float widening would
// lose precision for money-shaped columns).
func Decimal(d decimal.Decimal) Value {
	return ExtValue("Decimal", StringValue(d.String()))
}

// ParseDecimal parses a string into an Ext("Decimal", ...) value.
func ParseDecimal(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return NullValue(), err
	}
	return Decimal(d), nil
}

// AsDecimal unwraps an Ext("Decimal", ...) value back into a decimal.Decimal.
func (v Value) AsDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(v.Inner().String())
}
