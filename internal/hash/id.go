// Package hash provides the xxHash64 helpers used for reverse-index keys,
// blob payload checksums and the hashing-trick mapping function.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
