// Package hash provides the seeded xxHash functions used by string views.
package hash

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Seed is the fixed xxHash seed applied to every string view hash.
const Seed uint64 = 0x9747B28C

var digestPool = sync.Pool{
	New: func() any {
		return xxhash.New()
	},
}

// Sum64 computes the seeded xxHash64 of data.
func Sum64(data []byte) uint64 {
	d, _ := digestPool.Get().(*xxhash.Digest)
	d.ResetWithSeed(Seed)
	_, _ = d.Write(data)
	h := d.Sum64()
	digestPool.Put(d)

	return h
}

// Sum64String computes the seeded xxHash64 of a string without copying it.
func Sum64String(data string) uint64 {
	d, _ := digestPool.Get().(*xxhash.Digest)
	d.ResetWithSeed(Seed)
	_, _ = d.WriteString(data)
	h := d.Sum64()
	digestPool.Put(d)

	return h
}

// Sum32 computes a 32-bit hash of data by folding the seeded 64-bit hash.
// Equal inputs always fold to equal 32-bit values.
func Sum32(data []byte) uint32 {
	h := Sum64(data)
	return uint32(h>>32) ^ uint32(h&0xFFFFFFFF) //nolint:gosec
}
