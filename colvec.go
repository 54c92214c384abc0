// Package colvec provides a self-describing binary format for columnar
// vector data with minimal-deserialization reads.
//
// Colvec encodes tabular data one column at a time into an immutable binary
// blob and decodes blobs into column handles that answer length,
// availability and element queries directly out of the byte buffer. The
// encoder picks the smallest representation that preserves the data: empty,
// constant, dictionary, or bit-packed values at a minimal width.
//
// # Core Features
//
//   - Tagged 4-byte header identifying the vector kind and sub-encoding
//   - Table-structured payloads readable without unpacking (FlatBuffers layout)
//   - Compact NA masks: all-present, all-missing, or an explicit bitmap
//   - Minimal bit-width selection for integer and dictionary-code packing
//   - Zero-copy UTF-8 string views with cached xxHash values
//   - Optional per-blob compression (Zstd, S2, LZ4) for storage at rest
//
// # Basic Usage
//
// Encoding rows against a schema:
//
//	import "github.com/arloliu/colvec"
//
//	schema := blob.Schema{
//	    {Name: "name", Type: format.ElementString},
//	    {Name: "age", Type: format.ElementInt32},
//	}
//	builder, _ := blob.NewBuilder(schema)
//	builder.Append(row.NewTupleReader("Ada", int32(36)))
//	builder.Append(row.NewTupleReader("Grace", nil))
//	blobs, _ := builder.Finish()
//
// Decoding a column:
//
//	ages, _ := colvec.DecodeInt32s(blobs["age"])
//	for v := range vector.Values(ages) {
//	    fmt.Println(v)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob and
// vector packages, simplifying the most common use cases. For advanced usage
// and fine-grained control, use those packages directly.
package colvec

import (
	"time"

	"github.com/arloliu/colvec/blob"
	"github.com/arloliu/colvec/vector"
)

// EncodeBools encodes a fully present boolean column.
func EncodeBools(values []bool) ([]byte, error) {
	return blob.EncodeBoolColumn(values, nil)
}

// EncodeInt32s encodes a fully present int32 column at the minimum covering width.
func EncodeInt32s(values []int32) ([]byte, error) {
	return blob.EncodeInt32Column(values, nil)
}

// EncodeInt64s encodes a fully present int64 column at the minimum covering width.
func EncodeInt64s(values []int64) ([]byte, error) {
	return blob.EncodeInt64Column(values, nil)
}

// EncodeFloat32s encodes a fully present float32 column.
func EncodeFloat32s(values []float32) ([]byte, error) {
	return blob.EncodeFloat32Column(values, nil)
}

// EncodeFloat64s encodes a fully present float64 column.
func EncodeFloat64s(values []float64) ([]byte, error) {
	return blob.EncodeFloat64Column(values, nil)
}

// EncodeStrings encodes a fully present string column with the default
// dictionary threshold.
func EncodeStrings(values []string) ([]byte, error) {
	return blob.EncodeStringColumn(values, nil, 0)
}

// EncodeTimes encodes a fully present datetime column at microsecond
// resolution.
func EncodeTimes(values []time.Time) ([]byte, error) {
	micros := make([]int64, len(values))
	for i, t := range values {
		micros[i] = t.UnixMicro()
	}

	return blob.EncodeTimestampColumn(micros, nil)
}

// DecodeBools parses a blob as a boolean column.
func DecodeBools(data []byte) (vector.Column[bool], error) {
	return vector.DecodeBool(data)
}

// DecodeInt32s parses a blob as an int32 column.
func DecodeInt32s(data []byte) (vector.Column[int32], error) {
	return vector.DecodeInt32(data)
}

// DecodeInt64s parses a blob as an int64 column.
func DecodeInt64s(data []byte) (vector.Column[int64], error) {
	return vector.DecodeInt64(data)
}

// DecodeFloat32s parses a blob as a float32 column.
func DecodeFloat32s(data []byte) (vector.Column[float32], error) {
	return vector.DecodeFloat32(data)
}

// DecodeFloat64s parses a blob as a float64 column.
func DecodeFloat64s(data []byte) (vector.Column[float64], error) {
	return vector.DecodeFloat64(data)
}

// DecodeStrings parses a blob as an owned-string column.
func DecodeStrings(data []byte) (vector.Column[string], error) {
	return vector.DecodeString(data)
}

// DecodeUTF8Views parses a blob as a zero-copy string view column.
func DecodeUTF8Views(data []byte) (vector.Column[vector.StringView], error) {
	return vector.DecodeUTF8View(data)
}

// DecodeTimes parses a blob as a datetime column at microsecond resolution.
func DecodeTimes(data []byte) (vector.Column[time.Time], error) {
	return vector.DecodeDateTime(data)
}
