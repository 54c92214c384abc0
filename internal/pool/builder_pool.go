package pool

import (
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"
)

// BuilderDefaultSize is the initial capacity of pooled table builders.
const BuilderDefaultSize = 1024 * 64 // 64KiB

// builderPool reuses flatbuffers.Builder instances across encodings. A builder
// that grew to serve a large payload keeps its larger buffer when returned, so
// subsequent encodings on the same thread reuse it without reallocating.
// Builders are never shared between goroutines while in use.
var builderPool = sync.Pool{
	New: func() any {
		return flatbuffers.NewBuilder(BuilderDefaultSize)
	},
}

// GetBuilder retrieves a reset table builder from the pool.
func GetBuilder() *flatbuffers.Builder {
	b, _ := builderPool.Get().(*flatbuffers.Builder)
	return b
}

// PutBuilder resets the builder and returns it to the pool for reuse.
func PutBuilder(b *flatbuffers.Builder) {
	if b == nil {
		return
	}

	b.Reset()
	builderPool.Put(b)
}

// ResetBuilderPool discards all pooled builders. Intended for tests that
// measure allocation behavior from a cold pool.
func ResetBuilderPool() {
	builderPool = sync.Pool{
		New: func() any {
			return flatbuffers.NewBuilder(BuilderDefaultSize)
		},
	}
}
