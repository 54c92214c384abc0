package encoding

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidNBits(t *testing.T) {
	for _, nbits := range []uint8{1, 8, 16, 32, 64} {
		require.True(t, ValidNBits(nbits), "nbits=%d", nbits)
	}

	for _, nbits := range []uint8{0, 2, 3, 4, 5, 6, 7, 9, 24, 63, 65} {
		require.False(t, ValidNBits(nbits), "nbits=%d", nbits)
	}
}

func TestPackedByteLen(t *testing.T) {
	require.Equal(t, 0, PackedByteLen(0, 1))
	require.Equal(t, 1, PackedByteLen(1, 1))
	require.Equal(t, 1, PackedByteLen(8, 1))
	require.Equal(t, 2, PackedByteLen(9, 1))
	require.Equal(t, 125, PackedByteLen(1000, 1))
	require.Equal(t, 3, PackedByteLen(3, 8))
	require.Equal(t, 6, PackedByteLen(3, 16))
	require.Equal(t, 12, PackedByteLen(3, 32))
	require.Equal(t, 24, PackedByteLen(3, 64))
}

func TestMinBitsForIntRange(t *testing.T) {
	tests := []struct {
		name     string
		minVal   int64
		maxVal   int64
		expected uint8
	}{
		{"small positive", 0, 100, 8},
		{"full int8", math.MinInt8, math.MaxInt8, 8},
		{"just past int8", 0, 128, 16},
		{"negative past int8", -129, 0, 16},
		{"one to three hundred", 1, 300, 16},
		{"full int16", math.MinInt16, math.MaxInt16, 16},
		{"just past int16", 0, 32768, 32},
		{"full int32", math.MinInt32, math.MaxInt32, 32},
		{"just past int32", 0, math.MaxInt32 + 1, 64},
		{"full int64", math.MinInt64, math.MaxInt64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, MinBitsForIntRange(tt.minVal, tt.maxVal))
		})
	}
}

func TestDictCodeBits(t *testing.T) {
	require.Equal(t, uint8(1), DictCodeBits(0))
	require.Equal(t, uint8(1), DictCodeBits(1))
	require.Equal(t, uint8(8), DictCodeBits(2))
	require.Equal(t, uint8(8), DictCodeBits(255))
	require.Equal(t, uint8(16), DictCodeBits(256))
	require.Equal(t, uint8(16), DictCodeBits(65535))
	require.Equal(t, uint8(32), DictCodeBits(65536))
}

func TestBitPacker_RoundTrip(t *testing.T) {
	for _, nbits := range []uint8{8, 16, 32, 64} {
		t.Run(fmt.Sprintf("nbits=%d", nbits), func(t *testing.T) {
			values := []uint64{0, 1, 42, 200}

			p := NewBitPacker(nbits)
			defer p.Finish()
			for _, v := range values {
				p.WriteUint64(v)
			}

			data := p.Bytes()
			require.Equal(t, PackedByteLen(len(values), nbits), len(data))

			for i, v := range values {
				require.Equal(t, v, ReadPacked(data, i, nbits), "index %d at %d bits", i, nbits)
			}
		})
	}
}

func TestBitPacker_Bits(t *testing.T) {
	p := NewBitPacker(1)
	defer p.Finish()

	const count = 1000
	for i := 0; i < count; i++ {
		p.WriteBool(i%2 == 0)
	}

	data := p.Bytes()
	require.Equal(t, PackedByteLen(count, 1), len(data))

	for i := 0; i < count; i++ {
		expected := uint64(0)
		if i%2 == 0 {
			expected = 1
		}
		require.Equal(t, expected, ReadPacked(data, i, 1), "bit %d", i)
	}
}

func TestBitPacker_NegativeTruncation(t *testing.T) {
	// Negative values packed at a narrow width keep their low bits; the
	// reader sign-extends them back.
	p := NewBitPacker(8)
	defer p.Finish()

	v := int64(-5)
	p.WriteUint64(uint64(v))

	data := p.Bytes()
	require.Equal(t, byte(0xFB), data[0])
	require.Equal(t, int64(-5), int64(int8(ReadPacked(data, 0, 8))))
}

func TestBitPacker_PadsToAlignment(t *testing.T) {
	p := NewBitPacker(1)
	defer p.Finish()

	for i := 0; i < 3; i++ {
		p.WriteBool(true)
	}

	// 3 bits pad to one whole byte.
	require.Equal(t, 1, len(p.Bytes()))
	require.Equal(t, byte(0x07), p.Bytes()[0])
}
