package blob_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colvec/blob"
	"github.com/arloliu/colvec/format"
	"github.com/arloliu/colvec/internal/fb"
	"github.com/arloliu/colvec/row"
	"github.com/arloliu/colvec/section"
	"github.com/arloliu/colvec/vector"
)

func actorSchema() blob.Schema {
	return blob.Schema{
		{Name: "name", Type: format.ElementString},
		{Name: "age", Type: format.ElementInt32},
	}
}

func appendActorRows(b *blob.Builder) {
	b.Append(row.NewTupleReader("Matthew Perry", int32(18)))
	b.Append(row.NewTupleReader("Michelle Pfeiffer", nil))
	b.Append(row.NewTupleReader("George C", int32(59)))
	b.Append(row.NewTupleReader("Rich Sherman", int32(26)))
	b.Append(row.NewTupleReader(nil, nil))
}

func TestBuilder_RowsRoundTrip(t *testing.T) {
	builder, err := blob.NewBuilder(actorSchema())
	require.NoError(t, err)

	appendActorRows(builder)
	require.Equal(t, 5, builder.Len())

	blobs, err := builder.Finish()
	require.NoError(t, err)
	require.Len(t, blobs, 2)

	names, err := vector.DecodeString(blobs["name"])
	require.NoError(t, err)
	require.Equal(t, 5, names.Len())
	require.Equal(t, "Matthew Perry", names.Get(0))
	require.Equal(t, "Michelle Pfeiffer", names.Get(1))
	require.Equal(t, "George C", names.Get(2))
	require.Equal(t, "Rich Sherman", names.Get(3))
	require.False(t, names.IsAvailable(4))

	ages, err := vector.DecodeInt32(blobs["age"])
	require.NoError(t, err)
	require.Equal(t, 5, ages.Len())
	require.Equal(t, int32(18), ages.Get(0))
	require.False(t, ages.IsAvailable(1))
	require.Equal(t, int32(59), ages.Get(2))
	require.Equal(t, int32(26), ages.Get(3))
	require.False(t, ages.IsAvailable(4))

	// Ages 18..59 fit one byte.
	require.Equal(t, uint8(8), fb.GetRootAsSimplePrimitiveVector(blobs["age"][section.HeaderSize:], 0).Nbits())
}

func TestBuilder_ParallelEncodingMatchesSequential(t *testing.T) {
	sequential, err := blob.NewBuilder(actorSchema())
	require.NoError(t, err)
	parallel, err := blob.NewBuilder(actorSchema(), blob.WithParallelEncoding(true))
	require.NoError(t, err)

	appendActorRows(sequential)
	appendActorRows(parallel)

	seqBlobs, err := sequential.Finish()
	require.NoError(t, err)
	parBlobs, err := parallel.Finish()
	require.NoError(t, err)

	require.Equal(t, seqBlobs, parBlobs)
}

func TestBuilder_AllElementTypes(t *testing.T) {
	schema := blob.Schema{
		{Name: "flag", Type: format.ElementBool},
		{Name: "small", Type: format.ElementInt32},
		{Name: "big", Type: format.ElementInt64},
		{Name: "ratio", Type: format.ElementFloat32},
		{Name: "score", Type: format.ElementFloat64},
		{Name: "label", Type: format.ElementString},
		{Name: "seen", Type: format.ElementDateTime},
	}

	builder, err := blob.NewBuilder(schema)
	require.NoError(t, err)

	seen := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	builder.Append(row.NewTupleReader(true, int32(-3), int64(1)<<40, float32(0.5), 2.75, "alpha", seen))
	builder.Append(row.NewTupleReader(false, nil, int64(-9), float32(1.5), nil, "beta", nil))

	blobs, err := builder.Finish()
	require.NoError(t, err)

	flags, err := vector.DecodeBool(blobs["flag"])
	require.NoError(t, err)
	require.True(t, flags.Get(0))
	require.False(t, flags.Get(1))

	smalls, err := vector.DecodeInt32(blobs["small"])
	require.NoError(t, err)
	require.Equal(t, int32(-3), smalls.Get(0))
	require.False(t, smalls.IsAvailable(1))

	bigs, err := vector.DecodeInt64(blobs["big"])
	require.NoError(t, err)
	require.Equal(t, int64(1)<<40, bigs.Get(0))
	require.Equal(t, int64(-9), bigs.Get(1))

	ratios, err := vector.DecodeFloat32(blobs["ratio"])
	require.NoError(t, err)
	require.Equal(t, float32(0.5), ratios.Get(0))

	scores, err := vector.DecodeFloat64(blobs["score"])
	require.NoError(t, err)
	require.Equal(t, 2.75, scores.Get(0))
	require.False(t, scores.IsAvailable(1))

	labels, err := vector.DecodeString(blobs["label"])
	require.NoError(t, err)
	require.Equal(t, "alpha", labels.Get(0))
	require.Equal(t, "beta", labels.Get(1))

	times, err := vector.DecodeDateTime(blobs["seen"])
	require.NoError(t, err)
	require.True(t, times.Get(0).Equal(seen))
	require.False(t, times.IsAvailable(1))
}

func TestBuilder_StringsReaderParsesOnDemand(t *testing.T) {
	schema := blob.Schema{
		{Name: "city", Type: format.ElementString},
		{Name: "population", Type: format.ElementInt64},
	}

	builder, err := blob.NewBuilder(schema)
	require.NoError(t, err)

	builder.Append(row.NewStringsReader([]string{"Oslo", "709037"}))
	builder.Append(row.NewStringsReader([]string{"Bergen", ""}))

	blobs, err := builder.Finish()
	require.NoError(t, err)

	pops, err := vector.DecodeInt64(blobs["population"])
	require.NoError(t, err)
	require.Equal(t, int64(709037), pops.Get(0))
	require.False(t, pops.IsAvailable(1))
}

func TestBuilder_RoutingReaderRemapsColumns(t *testing.T) {
	schema := blob.Schema{
		{Name: "age", Type: format.ElementInt32},
		{Name: "name", Type: format.ElementString},
	}

	builder, err := blob.NewBuilder(schema)
	require.NoError(t, err)

	// Source rows are (name, age); the route swaps them.
	inner := row.NewTupleReader("Ada", int32(36))
	builder.Append(row.NewRoutingReader(inner, []int{1, 0}))

	blobs, err := builder.Finish()
	require.NoError(t, err)

	ages, err := vector.DecodeInt32(blobs["age"])
	require.NoError(t, err)
	require.Equal(t, int32(36), ages.Get(0))

	names, err := vector.DecodeString(blobs["name"])
	require.NoError(t, err)
	require.Equal(t, "Ada", names.Get(0))
}

func TestBuilder_EmptyStream(t *testing.T) {
	builder, err := blob.NewBuilder(actorSchema())
	require.NoError(t, err)

	blobs, err := builder.Finish()
	require.NoError(t, err)

	names, err := vector.DecodeString(blobs["name"])
	require.NoError(t, err)
	require.Equal(t, 0, names.Len())
}

func TestBuilder_DictThresholdOption(t *testing.T) {
	schema := blob.Schema{{Name: "tag", Type: format.ElementString}}

	builder, err := blob.NewBuilder(schema, blob.WithDictThreshold(1))
	require.NoError(t, err)

	builder.Append(row.NewSingleValueReader("a"))
	builder.Append(row.NewSingleValueReader("b"))
	builder.Append(row.NewSingleValueReader("a"))
	builder.Append(row.NewSingleValueReader("b"))

	blobs, err := builder.Finish()
	require.NoError(t, err)

	// Two distinct values exceed a threshold of one.
	require.Equal(t, byte(format.MajorSimple), blobs["tag"][0])
}

func TestBuilder_UnsupportedElementType(t *testing.T) {
	_, err := blob.NewBuilder(blob.Schema{{Name: "x", Type: format.ElementType(0x7F)}})
	require.Error(t, err)
}
