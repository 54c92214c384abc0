package blob_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colvec/blob"
	"github.com/arloliu/colvec/errs"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/vector"
)

func TestPack_RoundTrip(t *testing.T) {
	values := make([]int64, 2000)
	for i := range values {
		values[i] = int64(i % 50)
	}

	data, err := blob.EncodeInt64Column(values, nil)
	require.NoError(t, err)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			packed, err := blob.Pack(data, compression)
			require.NoError(t, err)
			require.True(t, blob.IsPacked(packed))
			require.False(t, blob.IsPacked(data))

			restored, err := blob.Unpack(packed)
			require.NoError(t, err)
			require.Equal(t, data, restored)

			col, err := vector.DecodeInt64(restored)
			require.NoError(t, err)
			require.Equal(t, len(values), col.Len())
			require.Equal(t, int64(49), col.Get(49))
		})
	}
}

func TestPack_CompressesRepetitiveData(t *testing.T) {
	values := make([]string, 64)
	for i := range values {
		if i%2 == 0 {
			values[i] = "the same phrase again and again and again"
		} else {
			values[i] = "another phrase repeated over and over and over"
		}
	}

	// Threshold of one forces the simple-string layout, which repeats every
	// value and compresses well.
	data, err := blob.EncodeStringColumn(values, nil, 1)
	require.NoError(t, err)

	packed, err := blob.Pack(data, format.CompressionZstd)
	require.NoError(t, err)
	require.Less(t, len(packed), len(data))
}

func TestUnpack_RejectsPlainBlob(t *testing.T) {
	data, err := blob.EncodeInt32Column([]int32{1}, nil)
	require.NoError(t, err)

	_, err = blob.Unpack(data)
	require.ErrorIs(t, err, errs.ErrNotPacked)
}

func TestPack_InvalidCompressionType(t *testing.T) {
	_, err := blob.Pack([]byte{1, 2, 3}, format.CompressionType(0x99))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
