package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringView_Ordering(t *testing.T) {
	apple := ViewOfString("apple")
	apricot := ViewOfString("apricot")

	require.Negative(t, apple.Compare(&apricot))
	require.Positive(t, apricot.Compare(&apple))
	require.Zero(t, apple.Compare(&apple))
}

func TestStringView_Equality(t *testing.T) {
	base := []byte("xxapplexx")
	a := NewStringView(base, 2, 5)
	b := ViewOfString("apple")
	c := ViewOfString("apples")

	require.True(t, a.Equal(&b))
	require.False(t, a.Equal(&c))
	require.Equal(t, "apple", a.String())
	require.Equal(t, 5, a.Len())
}

func TestStringView_OrderingConsistentWithEquality(t *testing.T) {
	a := ViewOfString("apple")
	b := ViewOfString("apple")

	require.Zero(t, a.Compare(&b))
	require.True(t, a.Equal(&b))
}

func TestStringView_UnsignedByteOrdering(t *testing.T) {
	// 0xFF orders after ASCII bytes when compared unsigned.
	low := ViewOfBytes([]byte{0x7F})
	high := ViewOfBytes([]byte{0xFF})

	require.Negative(t, low.Compare(&high))
}

func TestStringView_HashStability(t *testing.T) {
	apple1 := ViewOfString("apple")
	apple2 := ViewOfString("apple")
	banana := ViewOfString("banana")

	require.Equal(t, apple1.Hash32(), apple1.Hash32())
	require.Equal(t, apple1.Hash64(), apple1.Hash64())
	require.Equal(t, apple1.Hash32(), apple2.Hash32())
	require.Equal(t, apple1.Hash64(), apple2.Hash64())
	require.NotEqual(t, apple1.Hash32(), banana.Hash32())
	require.NotEqual(t, apple1.Hash64(), banana.Hash64())
}

func TestStringView_ZeroCopy(t *testing.T) {
	base := []byte("hello world")
	v := NewStringView(base, 6, 5)

	require.Equal(t, "world", string(v.Bytes()))

	// The view references the base region rather than a copy.
	base[6] = 'W'
	require.Equal(t, "World", string(v.Bytes()))
}
