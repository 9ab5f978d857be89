// Package blob serializes encoded label sequences into compact binary blobs
// for handoff between pipeline stages.
//
// A blob carries one Transform: its strategy, an optional compression flag,
// the one-hot bit width when applicable, and the codes themselves as a
// uvarint stream. The compressed payload is protected by an xxHash64
// checksum so corrupted blobs are rejected at decode time.
//
// The learned mapping itself is never serialized; a blob can be decoded
// without, but inverted only with, the encoder that produced it.
//
// # Layout
//
// All multi-byte fields are little-endian:
//
//	offset  size  field
//	0       2     magic "LB"
//	2       1     format version (currently 1)
//	3       1     strategy flag
//	4       1     compression flag
//	5       1     one-hot bit width (0 for integer codes)
//	6       8     xxHash64 of the compressed payload
//	14      ...   payload: uvarint count, then count uvarint codes
//	              (one-hot vectors packed to integers), compressed by the
//	              selected codec
package blob
