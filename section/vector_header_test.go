package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
)

func TestVectorHeader_RoundTrip(t *testing.T) {
	headers := []VectorHeader{
		{Major: format.MajorEmpty, Sub: 0, Aux: 0},
		{Major: format.MajorEmpty, Sub: 0, Aux: 12345},
		{Major: format.MajorEmpty, Sub: 0, Aux: 65535},
		{Major: format.MajorSimple, Sub: format.SubPrimitive},
		{Major: format.MajorSimple, Sub: format.SubString},
		{Major: format.MajorSimple, Sub: format.SubBool},
		{Major: format.MajorDict, Sub: format.SubString},
		{Major: format.MajorConst, Sub: format.SubString},
		{Major: format.MajorConst, Sub: format.SubPrimitive},
	}

	for _, h := range headers {
		decoded := ParseHeaderWord(h.Encode())
		require.Equal(t, h, decoded)
	}
}

func TestVectorHeader_WireLayout(t *testing.T) {
	h := VectorHeader{Major: format.MajorEmpty, Aux: 0x0102}

	b := make([]byte, HeaderSize)
	require.NoError(t, h.WriteToSlice(b))

	// Little-endian byte layout: major, sub, aux low, aux high.
	require.Equal(t, byte(format.MajorEmpty), b[0])
	require.Equal(t, byte(0), b[1])
	require.Equal(t, byte(0x02), b[2])
	require.Equal(t, byte(0x01), b[3])
}

func TestParseVectorHeader_Valid(t *testing.T) {
	b := make([]byte, HeaderSize)
	require.NoError(t, VectorHeader{Major: format.MajorSimple, Sub: format.SubBool}.WriteToSlice(b))

	h, err := ParseVectorHeader(b)
	require.NoError(t, err)
	require.Equal(t, format.MajorSimple, h.Major)
	require.Equal(t, format.SubBool, h.Sub)
	require.Equal(t, uint16(0), h.Aux)
}

func TestParseVectorHeader_Truncated(t *testing.T) {
	_, err := ParseVectorHeader([]byte{0x01, 0x00})
	require.ErrorIs(t, err, errs.ErrMalformedHeader)

	_, err = ParseVectorHeader(nil)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestParseVectorHeader_UnknownMajor(t *testing.T) {
	_, err := ParseVectorHeader([]byte{0x7F, 0x00, 0x00, 0x00})
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestParseVectorHeader_InvalidSubType(t *testing.T) {
	cases := []VectorHeader{
		{Major: format.MajorSimple, Sub: 0x7},
		{Major: format.MajorDict, Sub: format.SubPrimitive},
		{Major: format.MajorConst, Sub: format.SubBool},
	}

	for _, h := range cases {
		b := make([]byte, HeaderSize)
		engineWrite(t, h, b)

		_, err := ParseVectorHeader(b)
		require.ErrorIs(t, err, errs.ErrMalformedHeader, "header %+v", h)
	}
}

func TestParseVectorHeader_NonZeroAuxRejected(t *testing.T) {
	b := make([]byte, HeaderSize)
	engineWrite(t, VectorHeader{Major: format.MajorSimple, Sub: format.SubPrimitive, Aux: 7}, b)

	_, err := ParseVectorHeader(b)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

// engineWrite serializes without validation so tests can craft invalid headers.
func engineWrite(t *testing.T, h VectorHeader, b []byte) {
	t.Helper()
	require.NoError(t, h.WriteToSlice(b))
}
