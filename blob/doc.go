// Package blob provides the write path of the colvec format: per-column
// encoders that select the smallest faithful representation (empty, constant,
// dictionary, or bit-packed at a minimal width) and a row-to-column Builder
// that stages row streams into per-column buffers before encoding.
//
// # Encoding selection
//
// Each column encoder applies the same policy, first match wins:
//
//  1. Zero rows encode as an Empty blob of length 0.
//  2. An all-missing column encodes as an Empty blob whose header carries
//     the declared length (when it fits the 16-bit aux field).
//  3. A column whose present values are all equal encodes as a Const blob.
//  4. A string column with few distinct values encodes as a dictionary with
//     minimally wide codes.
//  5. Integer columns bit-pack at the smallest width in {8, 16, 32, 64}
//     covering the observed signed range; booleans pack at one bit.
//  6. Floating point and timestamp columns pack at their natural width.
//  7. Everything else encodes as a simple string vector.
//
// # Ownership and reuse
//
// Encoders return fresh heap-allocated blobs owned by the caller. Scratch
// table builders are pooled and reused across encodings; encoders are not
// thread-safe individually, so concurrent callers use one encoder per
// goroutine (the Builder's parallel mode does exactly that).
package blob
