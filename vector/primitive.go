package vector

import (
	"fmt"
	"math"

	"github.com/arloliu/colvec/encoding"
	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/internal/fb"
	"github.com/arloliu/colvec/section"
)

// primitiveBase holds the shared pieces of every bit-packed column handle:
// the packed data region, the NA mask, the logical length and the stored
// element width.
type primitiveBase struct {
	data   []byte
	mask   NaMask
	length int
	nbits  uint8
}

func (b *primitiveBase) Len() int {
	return b.length
}

func (b *primitiveBase) IsAvailable(i int) bool {
	return b.mask.IsPresent(i)
}

// parsePrimitive parses a SimplePrimitiveVector payload and validates its
// structure: nbits must be allowed for the element type and the packed data
// region must cover the declared element count. For Const vectors the data
// region packs a single value while the declared length stays logical.
func parsePrimitive(data []byte, isConst bool, allowed func(uint8) bool) (primitiveBase, error) {
	payload, err := payloadRegion(data)
	if err != nil {
		return primitiveBase{}, err
	}

	pv := fb.GetRootAsSimplePrimitiveVector(payload, 0)

	length := int(pv.Len())
	if length < 0 {
		return primitiveBase{}, fmt.Errorf("%w: negative length %d", errs.ErrLengthMismatch, length)
	}

	nbits := pv.Nbits()
	if !encoding.ValidNBits(nbits) || !allowed(nbits) {
		return primitiveBase{}, fmt.Errorf("%w: nbits=%d", errs.ErrUnsupportedNBits, nbits)
	}

	mask, err := newNaMask(pv.NaMask(nil))
	if err != nil {
		return primitiveBase{}, err
	}

	count := length
	if isConst {
		count = 1
	}

	need := (count*int(nbits) + 7) / 8
	raw := pv.DataBytes()
	if len(raw) < need {
		return primitiveBase{}, fmt.Errorf("%w: packed region is %d bytes, need %d for %d values at %d bits",
			errs.ErrTruncatedPayload, len(raw), need, count, nbits)
	}

	return primitiveBase{data: raw, mask: mask, length: length, nbits: nbits}, nil
}

// Stored widths below the element width sign-extend into signed element
// types when the stored top bit is set; this makes narrow packings of
// negative values round-trip.
func extendInt64(v uint64, nbits uint8) int64 {
	switch nbits {
	case 8:
		return int64(int8(v)) //nolint:gosec
	case 16:
		return int64(int16(v)) //nolint:gosec
	case 32:
		return int64(int32(v)) //nolint:gosec
	default:
		return int64(v) //nolint:gosec
	}
}

func extendInt32(v uint64, nbits uint8) int32 {
	switch nbits {
	case 8:
		return int32(int8(v)) //nolint:gosec
	case 16:
		return int32(int16(v)) //nolint:gosec
	default:
		return int32(v) //nolint:gosec
	}
}

type int32Column struct {
	primitiveBase
}

func (c *int32Column) Get(i int) int32 {
	return extendInt32(encoding.ReadPacked(c.data, i, c.nbits), c.nbits)
}

func (c *int32Column) GetSafe(i int) (int32, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return 0, false
	}

	return c.Get(i), true
}

func (c *int32Column) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

type int64Column struct {
	primitiveBase
}

func (c *int64Column) Get(i int) int64 {
	return extendInt64(encoding.ReadPacked(c.data, i, c.nbits), c.nbits)
}

func (c *int64Column) GetSafe(i int) (int64, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return 0, false
	}

	return c.Get(i), true
}

func (c *int64Column) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

type float32Column struct {
	primitiveBase
}

func (c *float32Column) Get(i int) float32 {
	return math.Float32frombits(uint32(encoding.ReadPacked(c.data, i, 32))) //nolint:gosec
}

func (c *float32Column) GetSafe(i int) (float32, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return 0, false
	}

	return c.Get(i), true
}

func (c *float32Column) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

type float64Column struct {
	primitiveBase
}

func (c *float64Column) Get(i int) float64 {
	return math.Float64frombits(encoding.ReadPacked(c.data, i, 64))
}

func (c *float64Column) GetSafe(i int) (float64, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return 0, false
	}

	return c.Get(i), true
}

func (c *float64Column) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

type boolColumn struct {
	primitiveBase
}

func (c *boolColumn) Get(i int) bool {
	return encoding.ReadPacked(c.data, i, 1) != 0
}

func (c *boolColumn) GetSafe(i int) (bool, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return false, false
	}

	return c.Get(i), true
}

func (c *boolColumn) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

func nbitsUpTo(maxBits uint8) func(uint8) bool {
	return func(n uint8) bool {
		return n >= 8 && n <= maxBits
	}
}

func nbitsExactly(want uint8) func(uint8) bool {
	return func(n uint8) bool {
		return n == want
	}
}

// DecodeInt32 parses a blob as an int32 column.
func DecodeInt32(data []byte, opts ...DecodeOption) (Column[int32], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &emptyColumn[int32]{length: cfg.lengthHint}, nil
	}

	h, err := section.ParseVectorHeader(data)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Major == format.MajorEmpty:
		return &emptyColumn[int32]{length: int(h.Aux)}, nil
	case h.Major == format.MajorSimple && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, false, nbitsUpTo(32))
		if err != nil {
			return nil, err
		}

		return &int32Column{base}, nil
	case h.Major == format.MajorConst && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, true, nbitsUpTo(32))
		if err != nil {
			return nil, err
		}

		value := extendInt32(encoding.ReadPacked(base.data, 0, base.nbits), base.nbits)

		return &constColumn[int32]{value: value, mask: base.mask, length: base.length}, nil
	default:
		return nil, typeMismatch(h, format.ElementInt32)
	}
}

// DecodeInt64 parses a blob as an int64 column.
func DecodeInt64(data []byte, opts ...DecodeOption) (Column[int64], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &emptyColumn[int64]{length: cfg.lengthHint}, nil
	}

	h, err := section.ParseVectorHeader(data)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Major == format.MajorEmpty:
		return &emptyColumn[int64]{length: int(h.Aux)}, nil
	case h.Major == format.MajorSimple && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, false, nbitsUpTo(64))
		if err != nil {
			return nil, err
		}

		return &int64Column{base}, nil
	case h.Major == format.MajorConst && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, true, nbitsUpTo(64))
		if err != nil {
			return nil, err
		}

		value := extendInt64(encoding.ReadPacked(base.data, 0, base.nbits), base.nbits)

		return &constColumn[int64]{value: value, mask: base.mask, length: base.length}, nil
	default:
		return nil, typeMismatch(h, format.ElementInt64)
	}
}

// DecodeFloat32 parses a blob as a float32 column.
func DecodeFloat32(data []byte, opts ...DecodeOption) (Column[float32], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &emptyColumn[float32]{length: cfg.lengthHint}, nil
	}

	h, err := section.ParseVectorHeader(data)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Major == format.MajorEmpty:
		return &emptyColumn[float32]{length: int(h.Aux)}, nil
	case h.Major == format.MajorSimple && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, false, nbitsExactly(32))
		if err != nil {
			return nil, err
		}

		return &float32Column{base}, nil
	case h.Major == format.MajorConst && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, true, nbitsExactly(32))
		if err != nil {
			return nil, err
		}

		value := math.Float32frombits(uint32(encoding.ReadPacked(base.data, 0, 32))) //nolint:gosec

		return &constColumn[float32]{value: value, mask: base.mask, length: base.length}, nil
	default:
		return nil, typeMismatch(h, format.ElementFloat32)
	}
}

// DecodeFloat64 parses a blob as a float64 column.
func DecodeFloat64(data []byte, opts ...DecodeOption) (Column[float64], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &emptyColumn[float64]{length: cfg.lengthHint}, nil
	}

	h, err := section.ParseVectorHeader(data)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Major == format.MajorEmpty:
		return &emptyColumn[float64]{length: int(h.Aux)}, nil
	case h.Major == format.MajorSimple && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, false, nbitsExactly(64))
		if err != nil {
			return nil, err
		}

		return &float64Column{base}, nil
	case h.Major == format.MajorConst && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, true, nbitsExactly(64))
		if err != nil {
			return nil, err
		}

		value := math.Float64frombits(encoding.ReadPacked(base.data, 0, 64))

		return &constColumn[float64]{value: value, mask: base.mask, length: base.length}, nil
	default:
		return nil, typeMismatch(h, format.ElementFloat64)
	}
}

// DecodeBool parses a blob as a boolean column.
func DecodeBool(data []byte, opts ...DecodeOption) (Column[bool], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &emptyColumn[bool]{length: cfg.lengthHint}, nil
	}

	h, err := section.ParseVectorHeader(data)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Major == format.MajorEmpty:
		return &emptyColumn[bool]{length: int(h.Aux)}, nil
	case h.Major == format.MajorSimple && h.Sub == format.SubBool:
		base, err := parsePrimitive(data, false, nbitsExactly(1))
		if err != nil {
			return nil, err
		}

		return &boolColumn{base}, nil
	case h.Major == format.MajorConst && h.Sub == format.SubPrimitive:
		base, err := parsePrimitive(data, true, nbitsExactly(1))
		if err != nil {
			return nil, err
		}

		value := encoding.ReadPacked(base.data, 0, 1) != 0

		return &constColumn[bool]{value: value, mask: base.mask, length: base.length}, nil
	default:
		return nil, typeMismatch(h, format.ElementBool)
	}
}
