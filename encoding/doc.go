// Package encoding provides the low-level value packing used by the blob
// encoders: bit-width selection, little-endian bit packing at the widths the
// wire format allows, and NA-mask word construction.
//
// The packing layout is shared with the read path in the vector package:
// values are packed little-endian at nbits per element, with the packed region
// padded to the alignment implied by nbits. Only nbits in {1, 8, 16, 32, 64}
// are valid; sub-8-bit widths other than 1 are rejected everywhere.
package encoding
