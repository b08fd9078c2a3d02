package value_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlkit/pkg/value"
)

func TestValue_PresentAndAbsent(t *testing.T) {
	present := value.Int(5)
	absent := value.IntNull()

	assert.False(t, present.IsNull())
	assert.True(t, absent.IsNull())
	assert.Equal(t, value.KindInteger, present.Kind())
	assert.Equal(t, value.KindInteger, absent.Kind())
}

func TestValue_AsAccessors(t *testing.T) {
	n, ok := value.Int(42).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	_, ok = value.Text("x").AsInt()
	assert.False(t, ok)

	s, ok := value.Text("hello").AsText()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	b, ok := value.Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, value.Int(1).Equal(value.Int(1)))
	assert.False(t, value.Int(1).Equal(value.Int(2)))
	assert.False(t, value.Int(1).Equal(value.Text("1")))

	// Two absent values of the same variant are equal; absent vs
	// present of the same variant are never equal.
	assert.True(t, value.IntNull().Equal(value.IntNull()))
	assert.False(t, value.IntNull().Equal(value.Int(0)))
}

func TestValue_EqualBytesByContent(t *testing.T) {
	a := value.Bytes([]byte("abc"))
	b := value.Bytes([]byte("abc"))
	assert.True(t, a.Equal(b))
}

func TestValue_EqualDecimalBySemanticValue(t *testing.T) {
	a := value.Real(decimal.RequireFromString("1.50"))
	b := value.Real(decimal.RequireFromString("1.5"))
	assert.True(t, a.Equal(b))
}

func TestValue_EqualArrayRecursive(t *testing.T) {
	a := value.Array([]value.Value{value.Int(1), value.Int(2)})
	b := value.Array([]value.Value{value.Int(1), value.Int(2)})
	c := value.Array([]value.Value{value.Int(1), value.Int(3)})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestValue_DateTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	local := time.Date(2024, 1, 1, 12, 0, 0, 0, loc)
	v := value.DateTime(local)
	got, ok := v.AsDateTime()
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, local.Equal(got))
}

func TestValue_UUID(t *testing.T) {
	id := uuid.New()
	v := value.UUID(id)
	got, ok := v.AsUUID()
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestConvert_PointerHelpersNilMapsToAbsent(t *testing.T) {
	assert.True(t, value.FromIntPtr(nil).IsNull())
	assert.True(t, value.FromStringPtr(nil).IsNull())
	assert.True(t, value.FromBoolPtr(nil).IsNull())
	assert.True(t, value.FromTimePtr(nil).IsNull())
}

func TestConvert_PointerHelpersPresent(t *testing.T) {
	n := 7
	v := value.FromIntPtr(&n)
	require.False(t, v.IsNull())
	got, _ := v.AsInt()
	assert.Equal(t, int64(7), got)
}
