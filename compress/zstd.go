package compress

// ZstdCompressor provides Zstandard compression for blobs headed to cold
// storage, where ratio matters more than speed.
//
// The default build uses the pure-Go implementation; a cgo-backed variant
// exists behind a build tag for environments that link libzstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
