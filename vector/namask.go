package vector

import (
	"encoding/binary"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/internal/fb"
)

// NaMask answers per-element availability for a decoded column.
//
// The bitmap variant keeps a zero-copy reference to the little-endian word
// region inside the payload. Its word count may be shorter than ceil(n/64);
// positions past the stored words read as present.
type NaMask struct {
	words []byte // raw little-endian uint64 words, zero-copy
	kind  fb.MaskType
}

// newNaMask builds a mask reader from the payload table. A nil table means
// every position is present.
func newNaMask(m *fb.NaMask) (NaMask, error) {
	if m == nil {
		return NaMask{kind: fb.MaskTypeAllZeroes}, nil
	}

	kind := m.MaskType()
	switch kind {
	case fb.MaskTypeAllZeroes, fb.MaskTypeAllOnes:
		return NaMask{kind: kind}, nil
	case fb.MaskTypeSimpleBitMask:
	default:
		return NaMask{}, fmt.Errorf("%w: unknown NA mask type %d", errs.ErrMalformedHeader, byte(kind))
	}

	n := m.BitMaskLength()
	if n == 0 {
		return NaMask{kind: fb.MaskTypeSimpleBitMask}, nil
	}

	// Grab the word region directly; reading through the vector accessor per
	// element would cost a table lookup on every IsPresent call.
	t := m.Table()
	o := flatbuffers.UOffsetT(t.Offset(6))
	a := t.Vector(o)

	end := int(a) + n*8
	if end > len(t.Bytes) {
		return NaMask{}, fmt.Errorf("%w: NA mask words extend past payload", errs.ErrTruncatedPayload)
	}

	return NaMask{kind: fb.MaskTypeSimpleBitMask, words: t.Bytes[a:end]}, nil
}

// Kind returns the mask variant tag.
func (m NaMask) Kind() fb.MaskType {
	return m.kind
}

// IsPresent reports whether position i holds a value. Positions past the end
// of a bitmap's stored words are present.
func (m NaMask) IsPresent(i int) bool {
	switch m.kind {
	case fb.MaskTypeAllOnes:
		return false
	case fb.MaskTypeSimpleBitMask:
		off := (i >> 6) * 8
		if off >= len(m.words) {
			return true
		}

		word := binary.LittleEndian.Uint64(m.words[off:])

		return (word>>(uint(i)&63))&1 == 0
	default:
		return true
	}
}
