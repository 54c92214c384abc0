package vector

import (
	"time"
)

// timeColumn adapts an int64 column into time.Time elements. Datetime
// columns store microseconds since the Unix epoch, SQL timestamps store
// milliseconds; both reduce to the 64-bit primitive encoding on the wire.
type timeColumn struct {
	inner Column[int64]
	unix  func(int64) time.Time
}

func (c *timeColumn) Len() int {
	return c.inner.Len()
}

func (c *timeColumn) IsAvailable(i int) bool {
	return c.inner.IsAvailable(i)
}

func (c *timeColumn) Get(i int) time.Time {
	return c.unix(c.inner.Get(i))
}

func (c *timeColumn) GetSafe(i int) (time.Time, bool) {
	v, ok := c.inner.GetSafe(i)
	if !ok {
		return time.Time{}, false
	}

	return c.unix(v), true
}

func (c *timeColumn) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

// DecodeDateTime parses a blob as a time.Time column stored at microsecond
// resolution.
func DecodeDateTime(data []byte, opts ...DecodeOption) (Column[time.Time], error) {
	inner, err := DecodeInt64(data, opts...)
	if err != nil {
		return nil, err
	}

	return &timeColumn{inner: inner, unix: time.UnixMicro}, nil
}

// DecodeSQLTimestamp parses a blob as a time.Time column stored at
// millisecond resolution.
func DecodeSQLTimestamp(data []byte, opts ...DecodeOption) (Column[time.Time], error) {
	inner, err := DecodeInt64(data, opts...)
	if err != nil {
		return nil, err
	}

	return &timeColumn{inner: inner, unix: time.UnixMilli}, nil
}
