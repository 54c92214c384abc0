package vector

import (
	"fmt"
	"sync"

	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
)

// Maker constructs a boxed column handle from a blob. The lengthHint is the
// logical length reported when data is absent.
type Maker func(data []byte, lengthHint int) (AnyColumn, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[format.ElementType]Maker)
)

// Register installs a column maker for an element type, replacing any
// existing entry. The default registry covers the built-in element types;
// callers may add makers for extension types.
func Register(elem format.ElementType, maker Maker) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[elem] = maker
}

// DecodeAny decodes a blob through the registry entry for the element type.
// Returns ErrTypeMismatch when no maker is registered.
func DecodeAny(elem format.ElementType, data []byte, lengthHint int) (AnyColumn, error) {
	registryMu.RLock()
	maker, ok := registry[elem]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no column maker for element type %s", errs.ErrTypeMismatch, elem)
	}

	return maker(data, lengthHint)
}

func boxed[T any](c Column[T], err error) (AnyColumn, error) {
	if err != nil {
		return nil, err
	}

	ac, ok := c.(AnyColumn)
	if !ok {
		return nil, fmt.Errorf("%w: column %T does not support boxed access", errs.ErrTypeMismatch, c)
	}

	return ac, nil
}

func init() {
	Register(format.ElementBool, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeBool(data, WithLengthHint(hint)))
	})
	Register(format.ElementInt32, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeInt32(data, WithLengthHint(hint)))
	})
	Register(format.ElementInt64, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeInt64(data, WithLengthHint(hint)))
	})
	Register(format.ElementFloat32, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeFloat32(data, WithLengthHint(hint)))
	})
	Register(format.ElementFloat64, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeFloat64(data, WithLengthHint(hint)))
	})
	Register(format.ElementString, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeString(data, WithLengthHint(hint)))
	})
	Register(format.ElementUTF8View, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeUTF8View(data, WithLengthHint(hint)))
	})
	Register(format.ElementDateTime, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeDateTime(data, WithLengthHint(hint)))
	})
	Register(format.ElementSQLTimestamp, func(data []byte, hint int) (AnyColumn, error) {
		return boxed(DecodeSQLTimestamp(data, WithLengthHint(hint)))
	})
}
