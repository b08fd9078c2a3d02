// Package value implements the dialect-independent tagged value used both
// for AST literals and for bound query parameters.
//
// A Value is either present, carrying a typed payload, or absent, encoding
// SQL NULL for a specific variant. Conversions that would lose information
// (e.g. narrowing a uint64 that overflows int64) are never performed here —
// Value is pure data; narrowing errors belong to the driver adapter that
// binds a Value to a concrete column (see pkg/errkind).
package value

import (
	"encoding/json"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies a Value's variant.
type Kind int

// Variant kinds, one per the value model in SPEC_FULL.md §3.
const (
	KindInteger Kind = iota
	KindReal
	KindText
	KindEnum
	KindBytes
	KindBoolean
	KindChar
	KindArray
	KindJSON
	KindUUID
	KindDateTime
	KindDate
	KindTime
)

// String returns the variant's name, used in error messages and debug logs.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindText:
		return "Text"
	case KindEnum:
		return "Enum"
	case KindBytes:
		return "Bytes"
	case KindBoolean:
		return "Boolean"
	case KindChar:
		return "Char"
	case KindArray:
		return "Array"
	case KindJSON:
		return "Json"
	case KindUUID:
		return "Uuid"
	case KindDateTime:
		return "DateTime"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	default:
		return "Unknown"
	}
}

// Value is a tagged union: a Kind plus either a present payload or the
// absent state (SQL NULL) for that Kind.
type Value struct {
	kind    Kind
	present bool
	payload any
}

// Kind returns the value's variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return !v.present }

// Equal implements the equality invariant from SPEC_FULL.md §3: reflexive,
// symmetric and transitive across all variants. Two absent values of the
// same variant are equal; a present value is never equal to an absent one.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.present != other.present {
		return false
	}
	if !v.present {
		return true
	}
	switch v.kind {
	case KindBytes:
		a, _ := v.payload.([]byte)
		b, _ := other.payload.([]byte)
		return string(a) == string(b)
	case KindArray:
		a, _ := v.payload.([]Value)
		b, _ := other.payload.([]Value)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindJSON:
		a, _ := v.payload.(json.RawMessage)
		b, _ := other.payload.(json.RawMessage)
		return string(a) == string(b)
	case KindReal:
		a, _ := v.payload.(decimal.Decimal)
		b, _ := other.payload.(decimal.Decimal)
		return a.Equal(b)
	case KindDateTime:
		a, _ := v.payload.(time.Time)
		b, _ := other.payload.(time.Time)
		return a.Equal(b)
	default:
		return v.payload == other.payload
	}
}

// present builds a present Value of the given kind carrying payload.
func present(k Kind, payload any) Value {
	return Value{kind: k, present: true, payload: payload}
}

// Absent builds the absent (SQL NULL) value for the given variant.
func Absent(k Kind) Value {
	return Value{kind: k, present: false}
}

// Typed constructors, one per variant.

func Int(v int64) Value               { return present(KindInteger, v) }
func IntNull() Value                  { return Absent(KindInteger) }
func Real(v decimal.Decimal) Value    { return present(KindReal, v) }
func RealNull() Value                 { return Absent(KindReal) }
func Text(v string) Value             { return present(KindText, v) }
func TextNull() Value                 { return Absent(KindText) }
func Enum(v string) Value             { return present(KindEnum, v) }
func EnumNull() Value                 { return Absent(KindEnum) }
func Bytes(v []byte) Value            { return present(KindBytes, v) }
func BytesNull() Value                { return Absent(KindBytes) }
func Bool(v bool) Value               { return present(KindBoolean, v) }
func BoolNull() Value                 { return Absent(KindBoolean) }
func Char(v rune) Value               { return present(KindChar, v) }
func CharNull() Value                 { return Absent(KindChar) }
func Array(v []Value) Value           { return present(KindArray, v) }
func ArrayNull() Value                { return Absent(KindArray) }
func JSON(v json.RawMessage) Value    { return present(KindJSON, v) }
func JSONNull() Value                 { return Absent(KindJSON) }
func UUID(v uuid.UUID) Value          { return present(KindUUID, v) }
func UUIDNull() Value                 { return Absent(KindUUID) }
func DateTime(v time.Time) Value      { return present(KindDateTime, v.UTC()) }
func DateTimeNull() Value             { return Absent(KindDateTime) }
func Date(v civil.Date) Value         { return present(KindDate, v) }
func DateNull() Value                 { return Absent(KindDate) }
func Time(v civil.Time) Value         { return present(KindTime, v) }
func TimeNull() Value                 { return Absent(KindTime) }

// Typed accessors. Each returns its payload and true only if the kind
// matches and the value is present; otherwise the zero value and false.

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInteger || !v.present {
		return 0, false
	}
	return v.payload.(int64), true
}

func (v Value) AsReal() (decimal.Decimal, bool) {
	if v.kind != KindReal || !v.present {
		return decimal.Decimal{}, false
	}
	return v.payload.(decimal.Decimal), true
}

func (v Value) AsText() (string, bool) {
	if v.kind != KindText || !v.present {
		return "", false
	}
	return v.payload.(string), true
}

func (v Value) AsEnum() (string, bool) {
	if v.kind != KindEnum || !v.present {
		return "", false
	}
	return v.payload.(string), true
}

func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes || !v.present {
		return nil, false
	}
	return v.payload.([]byte), true
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBoolean || !v.present {
		return false, false
	}
	return v.payload.(bool), true
}

func (v Value) AsChar() (rune, bool) {
	if v.kind != KindChar || !v.present {
		return 0, false
	}
	return v.payload.(rune), true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray || !v.present {
		return nil, false
	}
	return v.payload.([]Value), true
}

func (v Value) AsJSON() (json.RawMessage, bool) {
	if v.kind != KindJSON || !v.present {
		return nil, false
	}
	return v.payload.(json.RawMessage), true
}

func (v Value) AsUUID() (uuid.UUID, bool) {
	if v.kind != KindUUID || !v.present {
		return uuid.UUID{}, false
	}
	return v.payload.(uuid.UUID), true
}

func (v Value) AsDateTime() (time.Time, bool) {
	if v.kind != KindDateTime || !v.present {
		return time.Time{}, false
	}
	return v.payload.(time.Time), true
}

func (v Value) AsDate() (civil.Date, bool) {
	if v.kind != KindDate || !v.present {
		return civil.Date{}, false
	}
	return v.payload.(civil.Date), true
}

func (v Value) AsTime() (civil.Time, bool) {
	if v.kind != KindTime || !v.present {
		return civil.Time{}, false
	}
	return v.payload.(civil.Time), true
}
