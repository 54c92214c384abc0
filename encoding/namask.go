package encoding

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/colvec/internal/fb"
)

// BuildMask converts a staged missing-position set into the wire NA-mask
// representation for a column of length n.
//
// An empty set compresses to AllZeroes, a full set to AllOnes, and anything
// in between becomes a SimpleBitMask whose word slice is padded to
// ceil(n/64) words. Bit i set means position i is missing.
//
// A nil bitmap is treated as "nothing missing".
func BuildMask(missing *roaring.Bitmap, n int) (fb.MaskType, []uint64) {
	if missing == nil || missing.IsEmpty() {
		return fb.MaskTypeAllZeroes, nil
	}

	if missing.GetCardinality() == uint64(n) { //nolint:gosec
		return fb.MaskTypeAllOnes, nil
	}

	words := make([]uint64, (n+63)/64)
	it := missing.Iterator()
	for it.HasNext() {
		i := it.Next()
		words[i>>6] |= 1 << (i & 63)
	}

	return fb.MaskTypeSimpleBitMask, words
}

// MissingCount returns the cardinality of a possibly nil missing set.
func MissingCount(missing *roaring.Bitmap) int {
	if missing == nil {
		return 0
	}

	return int(missing.GetCardinality()) //nolint:gosec
}

// IsMissing reports whether position i is in a possibly nil missing set.
func IsMissing(missing *roaring.Bitmap, i int) bool {
	if missing == nil {
		return false
	}

	return missing.Contains(uint32(i)) //nolint:gosec
}
