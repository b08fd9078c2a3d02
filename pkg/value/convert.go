package value

import (
	"encoding/json"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Conversions from primitive Go types to Value, one direction only: a
// primitive always maps to exactly one variant. Optional (pointer)
// primitives map to present or absent depending on whether the pointer is
// nil. These never fail — a primitive is always representable without
// information loss in its own variant; narrowing between *integer widths*
// is a driver-adapter concern (SPEC_FULL.md §3), not a concern of these
// constructors.

func FromInt(v int) Value       { return Int(int64(v)) }
func FromInt32(v int32) Value   { return Int(int64(v)) }
func FromInt64(v int64) Value   { return Int(v) }
func FromFloat64(v float64) Value {
	return Real(decimal.NewFromFloat(v))
}
func FromString(v string) Value   { return Text(v) }
func FromBytes(v []byte) Value    { return Bytes(v) }
func FromBool(v bool) Value       { return Bool(v) }
func FromRune(v rune) Value       { return Char(v) }
func FromUUID(v uuid.UUID) Value  { return UUID(v) }
func FromTime(v time.Time) Value  { return DateTime(v) }
func FromDate(v civil.Date) Value { return Date(v) }
func FromClock(v civil.Time) Value { return Time(v) }
func FromJSON(v json.RawMessage) Value { return JSON(v) }

func FromIntPtr(v *int) Value {
	if v == nil {
		return IntNull()
	}
	return FromInt(*v)
}

func FromInt64Ptr(v *int64) Value {
	if v == nil {
		return IntNull()
	}
	return Int(*v)
}

func FromStringPtr(v *string) Value {
	if v == nil {
		return TextNull()
	}
	return Text(*v)
}

func FromBoolPtr(v *bool) Value {
	if v == nil {
		return BoolNull()
	}
	return Bool(*v)
}

func FromFloat64Ptr(v *float64) Value {
	if v == nil {
		return RealNull()
	}
	return FromFloat64(*v)
}

func FromTimePtr(v *time.Time) Value {
	if v == nil {
		return DateTimeNull()
	}
	return DateTime(*v)
}

func FromUUIDPtr(v *uuid.UUID) Value {
	if v == nil {
		return UUIDNull()
	}
	return UUID(*v)
}

func FromBytesPtr(v []byte) Value {
	if v == nil {
		return BytesNull()
	}
	return Bytes(v)
}
