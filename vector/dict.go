package vector

import (
	"fmt"

	"github.com/arloliu/colvec/encoding"
	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/internal/fb"
)

// dictBase holds the shared pieces of the dictionary handles: the dictionary
// table, the packed codes region and its width, the NA mask and the logical
// length. A missing position's code is unspecified and never read; Get is
// gated by the mask.
type dictBase struct {
	vec       *fb.DictStringVector
	codes     []byte
	mask      NaMask
	length    int
	codeBits  uint8
	dictCount int
}

func (b *dictBase) Len() int {
	return b.length
}

func (b *dictBase) IsAvailable(i int) bool {
	return b.mask.IsPresent(i)
}

func (b *dictBase) code(i int) int {
	return int(encoding.ReadPacked(b.codes, i, b.codeBits)) //nolint:gosec
}

// parseDict parses and validates a DictStringVector payload.
func parseDict(data []byte) (dictBase, error) {
	payload, err := payloadRegion(data)
	if err != nil {
		return dictBase{}, err
	}

	vec := fb.GetRootAsDictStringVector(payload, 0)

	length := int(vec.Len())
	if length < 0 {
		return dictBase{}, fmt.Errorf("%w: negative length %d", errs.ErrLengthMismatch, length)
	}

	info := vec.Info(nil)
	if info == nil {
		return dictBase{}, fmt.Errorf("%w: dict vector without codes table", errs.ErrTruncatedPayload)
	}

	codeBits := info.Nbits()
	switch codeBits {
	case 1, 8, 16, 32:
	default:
		return dictBase{}, fmt.Errorf("%w: dict code nbits=%d", errs.ErrUnsupportedNBits, codeBits)
	}

	need := (length*int(codeBits) + 7) / 8
	codes := info.DataBytes()
	if len(codes) < need {
		return dictBase{}, fmt.Errorf("%w: codes region is %d bytes, need %d for %d codes at %d bits",
			errs.ErrTruncatedPayload, len(codes), need, length, codeBits)
	}

	mask, err := newNaMask(vec.NaMask(nil))
	if err != nil {
		return dictBase{}, err
	}

	return dictBase{
		vec:       vec,
		codes:     codes,
		mask:      mask,
		length:    length,
		codeBits:  codeBits,
		dictCount: vec.DictLength(),
	}, nil
}

// dictStringColumn is the owned-string handle over a dictionary payload.
type dictStringColumn struct {
	dictBase
}

func (c *dictStringColumn) Get(i int) string {
	return string(c.vec.Dict(c.code(i)))
}

func (c *dictStringColumn) GetSafe(i int) (string, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return "", false
	}

	if code := c.code(i); code >= c.dictCount {
		return "", false
	}

	return c.Get(i), true
}

func (c *dictStringColumn) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}

// dictViewColumn is the zero-copy handle over a dictionary payload.
type dictViewColumn struct {
	dictBase
}

func (c *dictViewColumn) Get(i int) StringView {
	return ViewOfBytes(c.vec.Dict(c.code(i)))
}

func (c *dictViewColumn) GetSafe(i int) (StringView, bool) {
	if i < 0 || i >= c.length || !c.mask.IsPresent(i) {
		return StringView{}, false
	}

	if code := c.code(i); code >= c.dictCount {
		return StringView{}, false
	}

	return c.Get(i), true
}

func (c *dictViewColumn) GetBoxed(i int) any {
	if v, ok := c.GetSafe(i); ok {
		return v
	}

	return nil
}
