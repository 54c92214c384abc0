package vector

import (
	"fmt"
	"iter"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/internal/options"
	"github.com/arloliu/colvec/section"
)

// Column is the typed read interface over a decoded blob.
type Column[T any] interface {
	// Len returns the logical row count of the column.
	Len() int

	// IsAvailable reports whether position i holds a value.
	// It may be called for any 0 <= i < Len().
	IsAvailable(i int) bool

	// Get returns the element at position i without validation.
	// If IsAvailable(i) is false or i is out of range, the result is
	// unspecified; callers gate on IsAvailable or use GetSafe.
	Get(i int) T

	// GetSafe returns the element at position i with bounds and
	// availability checks. The second return value is false for any
	// out-of-range or missing index.
	GetSafe(i int) (T, bool)
}

// AnyColumn is the boxed read interface used for interop through the
// element-type registry. GetBoxed returns nil for missing or out-of-range
// positions.
type AnyColumn interface {
	Len() int
	IsAvailable(i int) bool
	GetBoxed(i int) any
}

// Values returns an iterator over the available values of c, skipping
// missing positions. It does not box.
func Values[T any](c Column[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := c.Len()
		for i := 0; i < n; i++ {
			if !c.IsAvailable(i) {
				continue
			}
			if !yield(c.Get(i)) {
				return
			}
		}
	}
}

// Optional returns an iterator over every index of c, yielding nil for
// missing positions. Each available value is boxed; prefer Values when
// missing positions can be skipped.
func Optional[T any](c Column[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		n := c.Len()
		for i := 0; i < n; i++ {
			if !c.IsAvailable(i) {
				if !yield(nil) {
					return
				}

				continue
			}

			v := c.Get(i)
			if !yield(&v) {
				return
			}
		}
	}
}

type decodeConfig struct {
	lengthHint int
}

// DecodeOption configures blob decoding.
type DecodeOption = options.Option[*decodeConfig]

// WithLengthHint sets the logical length reported when decoding an absent
// byte region (nil or empty). It has no effect on non-empty blobs, which
// carry their own length.
func WithLengthHint(n int) DecodeOption {
	return options.NoError(func(cfg *decodeConfig) {
		cfg.lengthHint = n
	})
}

func newDecodeConfig(opts []DecodeOption) (decodeConfig, error) {
	var cfg decodeConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return decodeConfig{}, err
	}

	return cfg, nil
}

// payloadRegion returns the table payload that follows the header, verifying
// that the root table offset lands inside the buffer.
func payloadRegion(data []byte) ([]byte, error) {
	payload := data[section.PayloadOffset:]
	if len(payload) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: missing table payload", errs.ErrTruncatedPayload)
	}

	root := int(flatbuffers.GetUOffsetT(payload))
	if root < 0 || root+flatbuffers.SizeSOffsetT > len(payload) {
		return nil, fmt.Errorf("%w: root table offset %d exceeds payload size %d",
			errs.ErrTruncatedPayload, root, len(payload))
	}

	return payload, nil
}

func typeMismatch(h section.VectorHeader, elem format.ElementType) error {
	return fmt.Errorf("%w: cannot decode %s/%s vector as %s",
		errs.ErrTypeMismatch, h.Major, h.Sub, elem)
}
