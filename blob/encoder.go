package blob

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/colvec/encoding"
	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/internal/fb"
	"github.com/arloliu/colvec/internal/pool"
	"github.com/arloliu/colvec/section"
)

// DefaultDictThreshold returns the dictionary-encoding cutoff for a string
// column of length n: half the length, capped at 255 distinct values.
func DefaultDictThreshold(n int) int {
	threshold := n / 2
	if threshold > math.MaxUint8 {
		threshold = math.MaxUint8
	}

	return threshold
}

// finishBlob prefixes the finished table payload with the 4-byte header and
// returns the assembled blob as a fresh slice owned by the caller.
func finishBlob(b *flatbuffers.Builder, h section.VectorHeader, root flatbuffers.UOffsetT) []byte {
	b.Finish(root)
	payload := b.FinishedBytes()

	out := make([]byte, section.HeaderSize+len(payload))
	_ = h.WriteToSlice(out)
	copy(out[section.HeaderSize:], payload)

	return out
}

// encodeEmpty emits a header-only Empty blob with the declared length in aux.
func encodeEmpty(n int) []byte {
	out := make([]byte, section.HeaderSize)
	_ = section.VectorHeader{Major: format.MajorEmpty, Aux: uint16(n)}.WriteToSlice(out) //nolint:gosec

	return out
}

// buildNaMask emits the NA mask table for a column of length n.
func buildNaMask(b *flatbuffers.Builder, missing *roaring.Bitmap, n int) flatbuffers.UOffsetT {
	kind, words := encoding.BuildMask(missing, n)

	var wordsOff flatbuffers.UOffsetT
	if len(words) > 0 {
		fb.NaMaskStartBitMaskVector(b, len(words))
		for i := len(words) - 1; i >= 0; i-- {
			b.PrependUint64(words[i])
		}
		wordsOff = b.EndVector(len(words))
	}

	fb.NaMaskStart(b)
	fb.NaMaskAddMaskType(b, kind)
	if wordsOff != 0 {
		fb.NaMaskAddBitMask(b, wordsOff)
	}

	return fb.NaMaskEnd(b)
}

// emitPrimitive assembles a SimplePrimitiveVector blob. The write callback
// packs the data region; for Const vectors it packs a single value while
// length stays logical.
func emitPrimitive(h section.VectorHeader, length int, nbits uint8, missing *roaring.Bitmap, write func(p *encoding.BitPacker)) []byte {
	b := pool.GetBuilder()
	defer pool.PutBuilder(b)

	p := encoding.NewBitPacker(nbits)
	defer p.Finish()
	write(p)

	dataOff := b.CreateByteVector(p.Bytes())
	maskOff := buildNaMask(b, missing, length)

	fb.SimplePrimitiveVectorStart(b)
	fb.SimplePrimitiveVectorAddLen(b, int32(length)) //nolint:gosec
	fb.SimplePrimitiveVectorAddNaMask(b, maskOff)
	fb.SimplePrimitiveVectorAddNbits(b, nbits)
	fb.SimplePrimitiveVectorAddData(b, dataOff)
	root := fb.SimplePrimitiveVectorEnd(b)

	return finishBlob(b, h, root)
}

func emitConstPrimitive(length int, nbits uint8, missing *roaring.Bitmap, raw uint64) []byte {
	h := section.VectorHeader{Major: format.MajorConst, Sub: format.SubPrimitive}

	return emitPrimitive(h, length, nbits, missing, func(p *encoding.BitPacker) {
		p.WriteUint64(raw)
	})
}

// intScan holds the present-value statistics one pass collects.
type intScan struct {
	first    int64
	minVal   int64
	maxVal   int64
	present  int
	allEqual bool
}

func scanInt64(values []int64, missing *roaring.Bitmap) intScan {
	s := intScan{minVal: math.MaxInt64, maxVal: math.MinInt64, allEqual: true}

	for i, v := range values {
		if encoding.IsMissing(missing, i) {
			continue
		}

		if s.present == 0 {
			s.first = v
		} else if v != s.first {
			s.allEqual = false
		}
		s.present++

		if v < s.minVal {
			s.minVal = v
		}
		if v > s.maxVal {
			s.maxVal = v
		}
	}

	return s
}

func encodeInt64(values []int64, missing *roaring.Bitmap, naturalBits uint8, minimize bool) []byte {
	n := len(values)
	if n == 0 {
		return encodeEmpty(0)
	}

	miss := encoding.MissingCount(missing)
	if miss == n && n <= section.EmptyMaxLength {
		return encodeEmpty(n)
	}

	s := scanInt64(values, missing)

	if s.present > 0 && s.allEqual {
		return emitConstPrimitive(n, naturalBits, missing, uint64(s.first)) //nolint:gosec
	}

	nbits := naturalBits
	if minimize && s.present > 0 {
		nbits = encoding.MinBitsForIntRange(s.minVal, s.maxVal)
	}

	h := section.VectorHeader{Major: format.MajorSimple, Sub: format.SubPrimitive}

	return emitPrimitive(h, n, nbits, missing, func(p *encoding.BitPacker) {
		for _, v := range values {
			p.WriteUint64(uint64(v)) //nolint:gosec
		}
	})
}

// EncodeInt64Column encodes an int64 column at the minimum width covering
// the observed signed range. Entries at missing positions are ignored.
// A nil missing bitmap means every position is present.
func EncodeInt64Column(values []int64, missing *roaring.Bitmap) ([]byte, error) {
	return encodeInt64(values, missing, 64, true), nil
}

// EncodeTimestampColumn encodes an int64 timestamp column at the natural
// 64-bit width, skipping range minimization.
func EncodeTimestampColumn(values []int64, missing *roaring.Bitmap) ([]byte, error) {
	return encodeInt64(values, missing, 64, false), nil
}

// EncodeInt32Column encodes an int32 column at the minimum width covering
// the observed signed range.
func EncodeInt32Column(values []int32, missing *roaring.Bitmap) ([]byte, error) {
	wide := make([]int64, len(values))
	for i, v := range values {
		wide[i] = int64(v)
	}

	return encodeInt64(wide, missing, 32, true), nil
}

// EncodeFloat64Column encodes a float64 column at the natural 64-bit width.
func EncodeFloat64Column(values []float64, missing *roaring.Bitmap) ([]byte, error) {
	n := len(values)
	if n == 0 {
		return encodeEmpty(0), nil
	}

	miss := encoding.MissingCount(missing)
	if miss == n && n <= section.EmptyMaxLength {
		return encodeEmpty(n), nil
	}

	var (
		first    float64
		present  int
		allEqual = true
	)
	for i, v := range values {
		if encoding.IsMissing(missing, i) {
			continue
		}

		if present == 0 {
			first = v
		} else if v != first {
			allEqual = false
		}
		present++
	}

	if present > 0 && allEqual {
		return emitConstPrimitive(n, 64, missing, math.Float64bits(first)), nil
	}

	h := section.VectorHeader{Major: format.MajorSimple, Sub: format.SubPrimitive}

	return emitPrimitive(h, n, 64, missing, func(p *encoding.BitPacker) {
		for _, v := range values {
			p.WriteUint64(math.Float64bits(v))
		}
	}), nil
}

// EncodeFloat32Column encodes a float32 column at the natural 32-bit width.
func EncodeFloat32Column(values []float32, missing *roaring.Bitmap) ([]byte, error) {
	n := len(values)
	if n == 0 {
		return encodeEmpty(0), nil
	}

	miss := encoding.MissingCount(missing)
	if miss == n && n <= section.EmptyMaxLength {
		return encodeEmpty(n), nil
	}

	var (
		first    float32
		present  int
		allEqual = true
	)
	for i, v := range values {
		if encoding.IsMissing(missing, i) {
			continue
		}

		if present == 0 {
			first = v
		} else if v != first {
			allEqual = false
		}
		present++
	}

	if present > 0 && allEqual {
		return emitConstPrimitive(n, 32, missing, uint64(math.Float32bits(first))), nil
	}

	h := section.VectorHeader{Major: format.MajorSimple, Sub: format.SubPrimitive}

	return emitPrimitive(h, n, 32, missing, func(p *encoding.BitPacker) {
		for _, v := range values {
			p.WriteUint64(uint64(math.Float32bits(v)))
		}
	}), nil
}

// EncodeBoolColumn encodes a boolean column at one bit per value.
func EncodeBoolColumn(values []bool, missing *roaring.Bitmap) ([]byte, error) {
	n := len(values)
	if n == 0 {
		return encodeEmpty(0), nil
	}

	miss := encoding.MissingCount(missing)
	if miss == n && n <= section.EmptyMaxLength {
		return encodeEmpty(n), nil
	}

	var (
		first    bool
		present  int
		allEqual = true
	)
	for i, v := range values {
		if encoding.IsMissing(missing, i) {
			continue
		}

		if present == 0 {
			first = v
		} else if v != first {
			allEqual = false
		}
		present++
	}

	if present > 0 && allEqual {
		var raw uint64
		if first {
			raw = 1
		}

		return emitConstPrimitive(n, 1, missing, raw), nil
	}

	h := section.VectorHeader{Major: format.MajorSimple, Sub: format.SubBool}

	return emitPrimitive(h, n, 1, missing, func(p *encoding.BitPacker) {
		for _, v := range values {
			p.WriteBool(v)
		}
	}), nil
}

// EncodeStringColumn encodes a string column, choosing between constant,
// dictionary and simple-string representations. Entries at missing positions
// are ignored and never validated. A dictThreshold of zero or below selects
// DefaultDictThreshold.
func EncodeStringColumn(values []string, missing *roaring.Bitmap, dictThreshold int) ([]byte, error) {
	n := len(values)
	if n == 0 {
		return encodeEmpty(0), nil
	}

	for i, v := range values {
		if encoding.IsMissing(missing, i) {
			continue
		}
		if !utf8.ValidString(v) {
			return nil, fmt.Errorf("%w: value at position %d", errs.ErrInvalidUTF8, i)
		}
	}

	miss := encoding.MissingCount(missing)
	if miss == n && n <= section.EmptyMaxLength {
		return encodeEmpty(n), nil
	}

	// Collect distinct present values in first-appearance order and assign
	// dictionary codes in one pass.
	var (
		dict    []string
		codes   = make([]int, n)
		indexOf = make(map[string]int)
		present int
	)
	for i, v := range values {
		if encoding.IsMissing(missing, i) {
			continue
		}
		present++

		code, ok := indexOf[v]
		if !ok {
			code = len(dict)
			indexOf[v] = code
			dict = append(dict, v)
		}
		codes[i] = code
	}

	if present > 0 && len(dict) == 1 {
		return emitConstString(n, missing, dict[0]), nil
	}

	threshold := dictThreshold
	if threshold <= 0 {
		threshold = DefaultDictThreshold(n)
	}

	if present > 0 && len(dict) <= threshold {
		return emitDictString(n, missing, dict, codes), nil
	}

	return emitSimpleString(n, missing, values), nil
}

func emitConstString(n int, missing *roaring.Bitmap, value string) []byte {
	b := pool.GetBuilder()
	defer pool.PutBuilder(b)

	strOff := b.CreateString(value)
	maskOff := buildNaMask(b, missing, n)

	fb.ConstStringVectorStart(b)
	fb.ConstStringVectorAddLen(b, int32(n)) //nolint:gosec
	fb.ConstStringVectorAddNaMask(b, maskOff)
	fb.ConstStringVectorAddStr(b, strOff)
	root := fb.ConstStringVectorEnd(b)

	h := section.VectorHeader{Major: format.MajorConst, Sub: format.SubString}

	return finishBlob(b, h, root)
}

func emitDictString(n int, missing *roaring.Bitmap, dict []string, codes []int) []byte {
	b := pool.GetBuilder()
	defer pool.PutBuilder(b)

	strOffs := make([]flatbuffers.UOffsetT, len(dict))
	for i, s := range dict {
		strOffs[i] = b.CreateString(s)
	}

	fb.DictStringVectorStartDictVector(b, len(dict))
	for i := len(dict) - 1; i >= 0; i-- {
		b.PrependUOffsetT(strOffs[i])
	}
	dictOff := b.EndVector(len(dict))

	codeBits := encoding.DictCodeBits(len(dict))
	p := encoding.NewBitPacker(codeBits)
	defer p.Finish()
	for _, code := range codes {
		p.WriteUint64(uint64(code)) //nolint:gosec
	}
	dataOff := b.CreateByteVector(p.Bytes())

	// The codes table omits its own NA mask; availability lives at the
	// dictionary level.
	fb.SimplePrimitiveVectorStart(b)
	fb.SimplePrimitiveVectorAddLen(b, int32(n)) //nolint:gosec
	fb.SimplePrimitiveVectorAddNbits(b, codeBits)
	fb.SimplePrimitiveVectorAddData(b, dataOff)
	infoOff := fb.SimplePrimitiveVectorEnd(b)

	maskOff := buildNaMask(b, missing, n)

	fb.DictStringVectorStart(b)
	fb.DictStringVectorAddLen(b, int32(n)) //nolint:gosec
	fb.DictStringVectorAddNaMask(b, maskOff)
	fb.DictStringVectorAddInfo(b, infoOff)
	fb.DictStringVectorAddDict(b, dictOff)
	root := fb.DictStringVectorEnd(b)

	h := section.VectorHeader{Major: format.MajorDict, Sub: format.SubString}

	return finishBlob(b, h, root)
}

func emitSimpleString(n int, missing *roaring.Bitmap, values []string) []byte {
	b := pool.GetBuilder()
	defer pool.PutBuilder(b)

	strOffs := make([]flatbuffers.UOffsetT, n)
	for i, s := range values {
		if encoding.IsMissing(missing, i) {
			// A missing position still occupies a slot for direct indexing.
			strOffs[i] = b.CreateString("")

			continue
		}
		strOffs[i] = b.CreateString(s)
	}

	fb.SimpleStringVectorStartDataVector(b, n)
	for i := n - 1; i >= 0; i-- {
		b.PrependUOffsetT(strOffs[i])
	}
	dataOff := b.EndVector(n)

	maskOff := buildNaMask(b, missing, n)

	fb.SimpleStringVectorStart(b)
	fb.SimpleStringVectorAddLen(b, int32(n)) //nolint:gosec
	fb.SimpleStringVectorAddNaMask(b, maskOff)
	fb.SimpleStringVectorAddData(b, dataOff)
	root := fb.SimpleStringVectorEnd(b)

	h := section.VectorHeader{Major: format.MajorSimple, Sub: format.SubString}

	return finishBlob(b, h, root)
}
