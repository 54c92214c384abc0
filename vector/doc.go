// Package vector provides the read path of the colvec format: it parses an
// encoded blob into a column handle that answers length, availability and
// element queries directly out of the byte buffer, without copying the
// payload.
//
// # Column handles
//
// A column handle is obtained from one of the typed decode functions
// (DecodeBool, DecodeInt32, DecodeInt64, DecodeFloat32, DecodeFloat64,
// DecodeString, DecodeUTF8View, DecodeDateTime, DecodeSQLTimestamp) or from
// the element-type registry via DecodeAny. Handles hold a non-owning view of
// the blob bytes; the byte region must outlive every handle derived from it.
//
// The hot-path Get(i) performs no validation: calling it with an index that
// is out of range, or one for which IsAvailable(i) is false, yields an
// unspecified value (never a crash for in-range missing positions, but
// callers must gate on IsAvailable). GetSafe(i) is the checked variant.
// Structural validation happens once at decode time; malformed blobs fail
// fast there.
//
// # Thread safety
//
// Column handles and string views are immutable and safe to share across
// goroutines as long as the underlying byte region is not mutated.
package vector
