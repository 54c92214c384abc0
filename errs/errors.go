// Package errs defines the sentinel errors returned by colvec.
//
// Errors are wrapped with fmt.Errorf("%w: ...") at call sites to add context,
// so callers can match them with errors.Is.
package errs

import "errors"

var (
	// ErrMalformedHeader indicates the 4-byte vector header is truncated or
	// carries an unknown major/sub type combination. It is also returned for
	// an unknown NA mask type in the payload.
	ErrMalformedHeader = errors.New("malformed vector header")

	// ErrTruncatedPayload indicates a payload table field or bit-packed data
	// region extends past the end of the blob.
	ErrTruncatedPayload = errors.New("truncated vector payload")

	// ErrUnsupportedNBits indicates an nbits value outside {1, 8, 16, 32, 64}.
	ErrUnsupportedNBits = errors.New("unsupported nbits value")

	// ErrLengthMismatch indicates the declared vector length is inconsistent
	// with the size of the stored data.
	ErrLengthMismatch = errors.New("vector length mismatch")

	// ErrTypeMismatch indicates no column maker is registered for the
	// requested element type, or the blob encodes a different element kind.
	ErrTypeMismatch = errors.New("element type mismatch")

	// ErrInvalidUTF8 indicates a string value rejected at encode time because
	// it is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

	// ErrStringTooLong indicates a string value exceeds the maximum encodable
	// length.
	ErrStringTooLong = errors.New("string too long")

	// ErrSchemaMismatch indicates a row does not match the builder schema.
	ErrSchemaMismatch = errors.New("row does not match schema")

	// ErrInvalidCompression indicates an unknown compression type code.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrNotPacked indicates Unpack was called on data without a pack frame.
	ErrNotPacked = errors.New("data is not a packed column")
)
