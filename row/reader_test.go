package row

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTupleReader_PresenceAndGetters(t *testing.T) {
	r := NewTupleReader("hello", int32(5), nil, 2.5, true)

	require.True(t, r.IsPresent(0))
	require.True(t, r.IsPresent(1))
	require.False(t, r.IsPresent(2))
	require.True(t, r.IsPresent(3))
	require.True(t, r.IsPresent(4))
	require.False(t, r.IsPresent(5))
	require.False(t, r.IsPresent(-1))

	require.Equal(t, "hello", r.String(0))
	require.Equal(t, []byte("hello"), r.UTF8(0))
	require.Equal(t, int32(5), r.Int32(1))
	require.Equal(t, int64(5), r.Int64(1))
	require.Equal(t, 2.5, r.Float64(3))
	require.Equal(t, float32(2.5), r.Float32(3))
	require.True(t, r.Bool(4))
	require.Equal(t, any(int32(5)), r.Any(1))
}

func TestTupleReader_IntKindConversions(t *testing.T) {
	r := NewTupleReader(7, int64(8), int32(9), uint32(10))

	require.Equal(t, int32(7), r.Int32(0))
	require.Equal(t, int64(7), r.Int64(0))
	require.Equal(t, int64(8), r.Int64(1))
	require.Equal(t, int32(9), r.Int32(2))
	require.Equal(t, int64(10), r.Int64(3))
	require.Equal(t, float64(7), r.Float64(0))
}

func TestTupleReader_TimeValue(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewTupleReader(ts)

	require.Equal(t, ts.UnixMicro(), r.Int64(0))
	require.Equal(t, any(ts), r.Any(0))
}

func TestStringsReader_ParsesOnDemand(t *testing.T) {
	r := NewStringsReader([]string{"42", "", "2.5", "true", "text"})

	require.True(t, r.IsPresent(0))
	require.False(t, r.IsPresent(1))
	require.Equal(t, int32(42), r.Int32(0))
	require.Equal(t, int64(42), r.Int64(0))
	require.Equal(t, 2.5, r.Float64(2))
	require.Equal(t, float32(2.5), r.Float32(2))
	require.True(t, r.Bool(3))
	require.Equal(t, "text", r.String(4))
	require.Equal(t, []byte("text"), r.UTF8(4))
}

func TestSingleValueReader(t *testing.T) {
	r := NewSingleValueReader(int64(99))

	require.True(t, r.IsPresent(0))
	require.False(t, r.IsPresent(1))
	require.Equal(t, int64(99), r.Int64(0))

	missing := NewSingleValueReader(nil)
	require.False(t, missing.IsPresent(0))
}

func TestSeqReader(t *testing.T) {
	r := NewSeqReader([]float64{1.5, 2.5, 3.5})

	require.True(t, r.IsPresent(0))
	require.True(t, r.IsPresent(2))
	require.False(t, r.IsPresent(3))
	require.Equal(t, 2.5, r.Float64(1))
	require.Equal(t, float32(3.5), r.Float32(2))
}

func TestRoutingReader_RemapsAndUnwraps(t *testing.T) {
	inner := NewTupleReader("a", int32(1), nil)
	routed := NewRoutingReader(inner, []int{2, 0, 1})

	require.False(t, routed.IsPresent(0)) // -> inner col 2 (nil)
	require.True(t, routed.IsPresent(1))  // -> inner col 0
	require.Equal(t, "a", routed.String(1))
	require.Equal(t, int32(1), routed.Int32(2))
	require.False(t, routed.IsPresent(3)) // outside the route

	require.Same(t, Reader(inner), routed.Unwrap())
}

func TestEqual_BasedOnUnderlyingReader(t *testing.T) {
	inner := NewTupleReader("a")
	wrapped := NewRoutingReader(inner, []int{0})
	rewrapped := NewRoutingReader(wrapped, []int{0})
	other := NewTupleReader("a")

	require.True(t, Equal(inner, wrapped))
	require.True(t, Equal(wrapped, rewrapped))
	require.True(t, Equal(inner, inner))
	require.False(t, Equal(inner, other))
}
