package section

import "math"

// Sizes and limits of the blob layout.
const (
	// HeaderSize is the fixed size of the vector header at the start of every blob.
	HeaderSize = 4

	// PayloadOffset is the byte offset where the table payload starts.
	PayloadOffset = HeaderSize

	// EmptyMaxLength is the largest declared length an Empty vector can carry
	// in the 16-bit aux field. Longer all-missing columns are encoded as
	// Simple vectors with an AllOnes NA mask.
	EmptyMaxLength = math.MaxUint16
)

// Header byte offsets within the 4-byte little-endian header word.
const (
	MajorTypeOffset = 0 // byte 0: major vector type
	SubTypeOffset   = 1 // byte 1: sub-encoding, interpreted per major type
	AuxOffset       = 2 // bytes 2-3: uint16 aux (declared length for Empty, else zero)
)
