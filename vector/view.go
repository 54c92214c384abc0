package vector

import (
	"bytes"
	"sync/atomic"

	"github.com/arloliu/colvec/internal/hash"
)

// StringView is a zero-copy reference to a UTF-8 substring of a byte region.
//
// Views obey value semantics: ordering is unsigned lexicographic by byte,
// equality is byte-identical. The 32-bit and 64-bit hashes are computed
// lazily with the fixed seed and cached; zero is the uncomputed sentinel, so
// an input hashing to exactly zero is recomputed on each call.
//
// The base region must not change for the lifetime of the view.
type StringView struct {
	h64  uint64 // lazy hash cells; first field keeps 64-bit atomic alignment
	h32  uint32
	off  int
	size int
	base []byte
}

// NewStringView creates a view over base[off : off+size].
func NewStringView(base []byte, off, size int) StringView {
	return StringView{base: base, off: off, size: size}
}

// ViewOfBytes creates a view covering all of b without copying.
func ViewOfBytes(b []byte) StringView {
	return StringView{base: b, size: len(b)}
}

// ViewOfString creates a view over a copy of s.
func ViewOfString(s string) StringView {
	return ViewOfBytes([]byte(s))
}

// Len returns the view length in bytes.
func (v *StringView) Len() int {
	return v.size
}

// Bytes returns the referenced bytes without copying.
// The returned slice must not be modified.
func (v *StringView) Bytes() []byte {
	return v.base[v.off : v.off+v.size]
}

// String returns the view contents as an owned string. It allocates.
func (v *StringView) String() string {
	return string(v.Bytes())
}

// Compare orders two views by unsigned lexicographic byte comparison.
// The result is consistent with Equal.
func (v *StringView) Compare(other *StringView) int {
	return bytes.Compare(v.Bytes(), other.Bytes())
}

// Equal reports whether two views reference byte-identical content.
func (v *StringView) Equal(other *StringView) bool {
	return bytes.Equal(v.Bytes(), other.Bytes())
}

// Hash64 returns the seeded xxHash64 of the view contents, computing it on
// first use. Concurrent callers may race on the cache cell; every racer
// stores the same value.
func (v *StringView) Hash64() uint64 {
	if h := atomic.LoadUint64(&v.h64); h != 0 {
		return h
	}

	h := hash.Sum64(v.Bytes())
	atomic.StoreUint64(&v.h64, h)

	return h
}

// Hash32 returns the seeded 32-bit hash of the view contents, computing it
// on first use.
func (v *StringView) Hash32() uint32 {
	if h := atomic.LoadUint32(&v.h32); h != 0 {
		return h
	}

	h := hash.Sum32(v.Bytes())
	atomic.StoreUint32(&v.h32, h)

	return h
}
