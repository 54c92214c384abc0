package blob

import (
	"fmt"

	"github.com/arloliu/colvec/compress"
	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/section"
)

// packMagic tags a compressed blob frame. It is disjoint from every vector
// major type, so packed and plain blobs cannot be confused.
const packMagic = 0xC7

// Pack frames one encoded column blob with the given compression for storage
// or transport. The frame is a 4-byte prefix {magic, codec, reserved u16}
// followed by the compressed payload.
func Pack(data []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := compress.CreateCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("%w: type 0x%02x", errs.ErrInvalidCompression, uint8(compressionType))
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress blob: %w", err)
	}

	out := make([]byte, section.HeaderSize+len(compressed))
	out[0] = packMagic
	out[1] = byte(compressionType)
	copy(out[section.HeaderSize:], compressed)

	return out, nil
}

// IsPacked reports whether data carries a pack frame.
func IsPacked(data []byte) bool {
	return len(data) >= section.HeaderSize && data[0] == packMagic
}

// Unpack restores the original blob from a frame produced by Pack.
func Unpack(data []byte) ([]byte, error) {
	if !IsPacked(data) {
		return nil, errs.ErrNotPacked
	}

	codec, err := compress.CreateCodec(format.CompressionType(data[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: type 0x%02x", errs.ErrInvalidCompression, data[1])
	}

	decompressed, err := codec.Decompress(data[section.HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress blob: %w", err)
	}

	return decompressed, nil
}
