package section

import (
	"fmt"

	"github.com/arloliu/colvec/endian"
	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
)

// VectorHeader is the 4-byte prefix identifying how a blob payload is encoded.
//
// Layout (little-endian):
//
//	byte 0   major type
//	byte 1   sub type
//	bytes 2-3  uint16 aux field
//
// The aux field carries the declared logical length for Empty vectors and is
// zero for every other major type.
type VectorHeader struct {
	Major format.MajorType
	Sub   format.SubType
	Aux   uint16
}

// Encode packs the header into a single uint32 in wire order.
// The round-trip law ParseHeaderWord(h.Encode()) == h holds for every valid header.
func (h VectorHeader) Encode() uint32 {
	return uint32(h.Major) | uint32(h.Sub)<<8 | uint32(h.Aux)<<16
}

// ParseHeaderWord unpacks a uint32 header word without validation.
func ParseHeaderWord(word uint32) VectorHeader {
	return VectorHeader{
		Major: format.MajorType(word & 0xFF),
		Sub:   format.SubType((word >> 8) & 0xFF),
		Aux:   uint16(word >> 16), //nolint:gosec
	}
}

// WriteToSlice serializes the header into the first HeaderSize bytes of b.
func (h VectorHeader) WriteToSlice(b []byte) error {
	if len(b) < HeaderSize {
		return errs.ErrMalformedHeader
	}

	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(b[:HeaderSize], h.Encode())

	return nil
}

// Validate checks that the major/sub type combination is one the format defines.
func (h VectorHeader) Validate() error {
	switch h.Major {
	case format.MajorEmpty:
		// Sub type is unused for empty vectors; require zero so unknown
		// payload variants fail fast instead of decoding as empty.
		if h.Sub != 0 {
			return fmt.Errorf("%w: empty vector with sub type 0x%02x", errs.ErrMalformedHeader, uint8(h.Sub))
		}
	case format.MajorSimple:
		if h.Sub != format.SubPrimitive && h.Sub != format.SubString && h.Sub != format.SubBool {
			return fmt.Errorf("%w: simple vector with sub type 0x%02x", errs.ErrMalformedHeader, uint8(h.Sub))
		}
	case format.MajorDict:
		if h.Sub != format.SubString {
			return fmt.Errorf("%w: dict vector with sub type 0x%02x", errs.ErrMalformedHeader, uint8(h.Sub))
		}
	case format.MajorConst:
		if h.Sub != format.SubPrimitive && h.Sub != format.SubString {
			return fmt.Errorf("%w: const vector with sub type 0x%02x", errs.ErrMalformedHeader, uint8(h.Sub))
		}
	default:
		return fmt.Errorf("%w: unknown major type 0x%02x", errs.ErrMalformedHeader, uint8(h.Major))
	}

	if h.Major != format.MajorEmpty && h.Aux != 0 {
		return fmt.Errorf("%w: non-empty vector with aux 0x%04x", errs.ErrMalformedHeader, h.Aux)
	}

	return nil
}

// ParseVectorHeader parses and validates the header at the start of data.
//
// Returns:
//   - VectorHeader: Parsed header struct
//   - error: ErrMalformedHeader on truncation or unknown type codes
func ParseVectorHeader(data []byte) (VectorHeader, error) {
	if len(data) < HeaderSize {
		return VectorHeader{}, fmt.Errorf("%w: blob is %d bytes, need at least %d",
			errs.ErrMalformedHeader, len(data), HeaderSize)
	}

	engine := endian.GetLittleEndianEngine()
	h := ParseHeaderWord(engine.Uint32(data[:HeaderSize]))

	if err := h.Validate(); err != nil {
		return VectorHeader{}, err
	}

	return h, nil
}
