package encoding

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/colvec/endian"
	"github.com/arloliu/colvec/internal/pool"
)

// ValidNBits reports whether nbits is one of the widths the wire format allows.
func ValidNBits(nbits uint8) bool {
	switch nbits {
	case 1, 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// Alignment returns the byte alignment of the packed data region for nbits.
func Alignment(nbits uint8) int {
	switch nbits {
	case 16:
		return 2
	case 32:
		return 4
	case 64:
		return 8
	default:
		return 1
	}
}

// PackedByteLen returns the byte length of a packed region holding count
// values at nbits each: ceil(count*nbits/8) rounded up to the alignment
// implied by nbits.
func PackedByteLen(count int, nbits uint8) int {
	bits := count * int(nbits)
	n := (bits + 7) / 8

	align := Alignment(nbits)
	if rem := n % align; rem != 0 {
		n += align - rem
	}

	return n
}

// MinBitsForIntRange returns the smallest nbits in {8, 16, 32, 64} whose
// signed range covers [minVal, maxVal].
func MinBitsForIntRange(minVal, maxVal int64) uint8 {
	switch {
	case minVal >= math.MinInt8 && maxVal <= math.MaxInt8:
		return 8
	case minVal >= math.MinInt16 && maxVal <= math.MaxInt16:
		return 16
	case minVal >= math.MinInt32 && maxVal <= math.MaxInt32:
		return 32
	default:
		return 64
	}
}

// DictCodeBits returns the code width for a dictionary of dictSize entries:
// {<=1 -> 1, <=255 -> 8, <=65535 -> 16, else -> 32}.
func DictCodeBits(dictSize int) uint8 {
	switch {
	case dictSize <= 1:
		return 1
	case dictSize <= math.MaxUint8:
		return 8
	case dictSize <= math.MaxUint16:
		return 16
	default:
		return 32
	}
}

// ReadPacked reads the unsigned value at index i from a packed region.
//
// This is the hot read path shared by the primitive and dictionary-code
// readers; it performs no bounds checking. Callers validate the region size
// against the declared count at construction time.
func ReadPacked(data []byte, i int, nbits uint8) uint64 {
	switch nbits {
	case 1:
		return uint64((data[i>>3] >> (uint(i) & 7)) & 1)
	case 8:
		return uint64(data[i])
	case 16:
		return uint64(binary.LittleEndian.Uint16(data[i*2:]))
	case 32:
		return uint64(binary.LittleEndian.Uint32(data[i*4:]))
	default:
		return binary.LittleEndian.Uint64(data[i*8:])
	}
}

// BitPacker packs unsigned values at a fixed nbits into a pooled scratch buffer.
//
// Values are truncated to the low nbits bits; for two's-complement integers
// this preserves any value whose signed range fits the width.
//
// Note: The BitPacker is NOT thread-safe. Each packer instance should be used
// by a single goroutine at a time.
type BitPacker struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	nbits  uint8
	count  int
}

// NewBitPacker creates a new BitPacker for the given width.
// The width must satisfy ValidNBits.
func NewBitPacker(nbits uint8) *BitPacker {
	return &BitPacker{
		buf:    pool.GetScratchBuffer(),
		engine: endian.GetLittleEndianEngine(),
		nbits:  nbits,
	}
}

// WriteUint64 appends a single value at the packer's width.
func (p *BitPacker) WriteUint64(v uint64) {
	switch p.nbits {
	case 1:
		byteIdx := p.count >> 3
		if byteIdx >= p.buf.Len() {
			p.buf.ExtendZeroed(1)
		}
		if v&1 == 1 {
			p.buf.B[byteIdx] |= 1 << (uint(p.count) & 7)
		}
	case 8:
		p.buf.Grow(1)
		p.buf.B = append(p.buf.B, byte(v))
	case 16:
		p.buf.Grow(2)
		p.buf.B = p.engine.AppendUint16(p.buf.B, uint16(v)) //nolint:gosec
	case 32:
		p.buf.Grow(4)
		p.buf.B = p.engine.AppendUint32(p.buf.B, uint32(v)) //nolint:gosec
	default:
		p.buf.Grow(8)
		p.buf.B = p.engine.AppendUint64(p.buf.B, v)
	}

	p.count++
}

// WriteBool appends a single boolean; only meaningful at nbits = 1.
func (p *BitPacker) WriteBool(v bool) {
	if v {
		p.WriteUint64(1)
	} else {
		p.WriteUint64(0)
	}
}

// Len returns the number of values written.
func (p *BitPacker) Len() int {
	return p.count
}

// Bytes pads the packed region to its alignment and returns it.
//
// The returned slice shares the underlying scratch buffer with the packer.
// It is valid until Finish is called.
func (p *BitPacker) Bytes() []byte {
	target := PackedByteLen(p.count, p.nbits)
	if pad := target - p.buf.Len(); pad > 0 {
		p.buf.ExtendZeroed(pad)
	}

	return p.buf.Bytes()
}

// Finish returns the scratch buffer to the pool. The packer must not be used
// afterwards.
func (p *BitPacker) Finish() {
	if p.buf != nil {
		pool.PutScratchBuffer(p.buf)
		p.buf = nil
	}
	p.count = 0
}
