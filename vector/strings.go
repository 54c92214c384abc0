package vector

import (
	"fmt"

	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/internal/fb"
	"github.com/arloliu/colvec/section"
)

// stringColumn is the owned-string handle over a SimpleStringVector payload.
// Each Get copies the element bytes into a new string.
type stringColumn struct {
	vec    *fb.SimpleStringVector
	mask   NaMask
	length int
}

func (c *stringColumn) Len() int {
	return c.length
}

func (c *stringColumn) IsAvailable(i int) bool {
	return c.mask.IsPresent(i)
}

func (c *stringColumn) Get(i int) string {
	return string(c.vec.Data(i))
}

func (c *stringColumn) GetSafe(i int) (string, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return "", false
	}

	return c.Get(i), true
}

func (c *stringColumn) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

// viewColumn is the zero-copy handle over a SimpleStringVector payload.
// Get returns a StringView referencing the payload bytes; it does not
// allocate.
type viewColumn struct {
	vec    *fb.SimpleStringVector
	mask   NaMask
	length int
}

func (c *viewColumn) Len() int {
	return c.length
}

func (c *viewColumn) IsAvailable(i int) bool {
	return c.mask.IsPresent(i)
}

func (c *viewColumn) Get(i int) StringView {
	return ViewOfBytes(c.vec.Data(i))
}

func (c *viewColumn) GetSafe(i int) (StringView, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return StringView{}, false
	}

	return c.Get(i), true
}

func (c *viewColumn) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

// parseSimpleString parses and validates a SimpleStringVector payload.
func parseSimpleString(data []byte) (*fb.SimpleStringVector, NaMask, int, error) {
	payload, err := payloadRegion(data)
	if err != nil {
		return nil, NaMask{}, 0, err
	}

	vec := fb.GetRootAsSimpleStringVector(payload, 0)

	length := int(vec.Len())
	if length < 0 {
		return nil, NaMask{}, 0, fmt.Errorf("%w: negative length %d", errs.ErrLengthMismatch, length)
	}

	if stored := vec.DataLength(); stored < length {
		return nil, NaMask{}, 0, fmt.Errorf("%w: declared length %d but only %d stored strings",
			errs.ErrLengthMismatch, length, stored)
	}

	mask, err := newNaMask(vec.NaMask(nil))
	if err != nil {
		return nil, NaMask{}, 0, err
	}

	return vec, mask, length, nil
}

// parseConstString parses and validates a ConstStringVector payload.
func parseConstString(data []byte) (*fb.ConstStringVector, NaMask, int, error) {
	payload, err := payloadRegion(data)
	if err != nil {
		return nil, NaMask{}, 0, err
	}

	vec := fb.GetRootAsConstStringVector(payload, 0)

	length := int(vec.Len())
	if length < 0 {
		return nil, NaMask{}, 0, fmt.Errorf("%w: negative length %d", errs.ErrLengthMismatch, length)
	}

	mask, err := newNaMask(vec.NaMask(nil))
	if err != nil {
		return nil, NaMask{}, 0, err
	}

	return vec, mask, length, nil
}

// DecodeString parses a blob as an owned-string column. It accepts every
// string encoding: simple, constant and dictionary.
func DecodeString(data []byte, opts ...DecodeOption) (Column[string], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &emptyColumn[string]{length: cfg.lengthHint}, nil
	}

	h, err := section.ParseVectorHeader(data)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Major == format.MajorEmpty:
		return &emptyColumn[string]{length: int(h.Aux)}, nil
	case h.Major == format.MajorSimple && h.Sub == format.SubString:
		vec, mask, length, err := parseSimpleString(data)
		if err != nil {
			return nil, err
		}

		return &stringColumn{vec: vec, mask: mask, length: length}, nil
	case h.Major == format.MajorConst && h.Sub == format.SubString:
		vec, mask, length, err := parseConstString(data)
		if err != nil {
			return nil, err
		}

		return &constColumn[string]{value: string(vec.Str()), mask: mask, length: length}, nil
	case h.Major == format.MajorDict && h.Sub == format.SubString:
		d, err := parseDict(data)
		if err != nil {
			return nil, err
		}

		return &dictStringColumn{d}, nil
	default:
		return nil, typeMismatch(h, format.ElementString)
	}
}

// DecodeUTF8View parses a blob as a zero-copy string view column. It accepts
// every string encoding: simple, constant and dictionary.
func DecodeUTF8View(data []byte, opts ...DecodeOption) (Column[StringView], error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &emptyColumn[StringView]{length: cfg.lengthHint}, nil
	}

	h, err := section.ParseVectorHeader(data)
	if err != nil {
		return nil, err
	}

	switch {
	case h.Major == format.MajorEmpty:
		return &emptyColumn[StringView]{length: int(h.Aux)}, nil
	case h.Major == format.MajorSimple && h.Sub == format.SubString:
		vec, mask, length, err := parseSimpleString(data)
		if err != nil {
			return nil, err
		}

		return &viewColumn{vec: vec, mask: mask, length: length}, nil
	case h.Major == format.MajorConst && h.Sub == format.SubString:
		vec, mask, length, err := parseConstString(data)
		if err != nil {
			return nil, err
		}

		return &constColumn[StringView]{value: ViewOfBytes(vec.Str()), mask: mask, length: length}, nil
	case h.Major == format.MajorDict && h.Sub == format.SubString:
		d, err := parseDict(data)
		if err != nil {
			return nil, err
		}

		return &dictViewColumn{d}, nil
	default:
		return nil, typeMismatch(h, format.ElementUTF8View)
	}
}
