package connector

import (
	"fmt"
	"time"

	"sqlkit/pkg/value"
)

// valuesToArgs narrows each bound Value to the driver.Value-compatible
// type database/sql expects. shopspring/decimal, google/uuid and
// golang-sql/civil all implement database/sql/driver.Valuer themselves,
// so their Kind variants pass through unchanged; the rest map to a
// primitive. This is the narrowing point SPEC_FULL.md §3 reserves for the
// driver adapter, not Value itself.
func valuesToArgs(params []value.Value) ([]any, error) {
	args := make([]any, len(params))
	for i, v := range params {
		a, err := valueToArg(v)
		if err != nil {
			return nil, fmt.Errorf("connector: binding parameter %d: %w", i+1, err)
		}
		args[i] = a
	}
	return args, nil
}

func valueToArg(v value.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	switch v.Kind() {
	case value.KindInteger:
		n, _ := v.AsInt()
		return n, nil
	case value.KindReal:
		d, _ := v.AsReal()
		return d, nil
	case value.KindText:
		s, _ := v.AsText()
		return s, nil
	case value.KindEnum:
		s, _ := v.AsEnum()
		return s, nil
	case value.KindBytes:
		b, _ := v.AsBytes()
		return b, nil
	case value.KindBoolean:
		b, _ := v.AsBool()
		return b, nil
	case value.KindChar:
		c, _ := v.AsChar()
		return string(c), nil
	case value.KindJSON:
		j, _ := v.AsJSON()
		return []byte(j), nil
	case value.KindUUID:
		u, _ := v.AsUUID()
		return u, nil
	case value.KindDateTime:
		t, _ := v.AsDateTime()
		return t, nil
	case value.KindDate:
		d, _ := v.AsDate()
		return d, nil
	case value.KindTime:
		t, _ := v.AsTime()
		return t, nil
	case value.KindArray:
		return nil, fmt.Errorf("connector: Array parameters need a dialect-specific encoding (e.g. postgres array literal or JSON), not yet implemented generically")
	default:
		return nil, fmt.Errorf("connector: unsupported value kind %v", v.Kind())
	}
}

// inferValue wraps a driver-returned column value in the nearest Value
// variant by its concrete Go type. database/sql already normalizes driver
// output to one of a small set of types (int64, float64, bool, []byte,
// string, time.Time, nil), so this is a closed switch.
func inferValue(raw any) value.Value {
	switch x := raw.(type) {
	case nil:
		return value.TextNull()
	case int64:
		return value.Int(x)
	case float64:
		return value.FromFloat64(x)
	case bool:
		return value.Bool(x)
	case []byte:
		return value.Bytes(append([]byte(nil), x...))
	case string:
		return value.Text(x)
	case time.Time:
		return value.DateTime(x)
	default:
		return value.Text(fmt.Sprint(x))
	}
}
