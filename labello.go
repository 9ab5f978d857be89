// Package labello provides fast categorical-label encoding: it maps arbitrary
// comparable category values (strings, integers, ...) to compact numeric or
// bit-vector codes, and can invert that mapping.
//
// It is built for data-preparation pipelines that need categorical features
// in numeric form before downstream numeric processing.
//
// # Encoding Strategies
//
//   - Ordinal: each distinct category receives the next integer index in
//     first-seen order. An optional class ceiling merges all overflow
//     categories into the final index.
//   - OneHot: categories receive fixed-width bit vectors derived from their
//     first-seen index; all vectors of one fit share the same width.
//   - CustomMapping: codes come from a user-supplied function. Reversibility
//     then depends entirely on that function: a non-injective mapping makes
//     the inverse lossy by design.
//
// Ordinal and OneHot encoders round-trip losslessly in the absence of
// ceiling collisions.
//
// # Basic Usage
//
//	data := []string{"hello", "world", "world", "again", "hello", "goodbye"}
//
//	enc := labello.NewOrdinalEncoder[string]()
//	if err := enc.Fit(data); err != nil {
//	    log.Fatal(err)
//	}
//
//	tr := enc.Transform(data)        // [0 1 1 2 0 3]
//	orig, _ := enc.InverseTransform(tr)
//	n := enc.NumClasses()            // 4
//
// Capping an unbounded-cardinality feature at 100 classes:
//
//	err := enc.Fit(data, encoder.WithMaxClasses[string](100))
//
// Custom mapping via the hashing trick:
//
//	enc := labello.NewCustomEncoder[string]()
//	err := enc.Fit(data, encoder.WithMappingFunc(labello.HashMapping(64)))
//
// # Transform Blobs
//
// Encoded sequences can travel between pipeline stages as compact binary
// blobs, optionally compressed (see the blob package):
//
//	raw, _ := blob.Encode(tr, blob.WithCompression(format.CompressionZstd))
//	tr2, _ := blob.Decode(raw)
//
// # Package Structure
//
// This package provides thin wrappers around the encoder package for the
// common cases. The encoder, blob, bitvec, compress and format packages
// expose the full surface.
package labello

import (
	"github.com/arloliu/labello/encoder"
	"github.com/arloliu/labello/format"
	"github.com/arloliu/labello/internal/hash"
)

// NewEncoder creates an encoder for the given strategy. A zero strategy
// value defaults to format.StrategyOrdinal.
//
// Returns an error only when the strategy value is unknown; the
// strategy-specific constructors below cannot fail.
func NewEncoder[T comparable](strategy format.StrategyType) (*encoder.Encoder[T], error) {
	return encoder.New[T](strategy)
}

// NewOrdinalEncoder creates an encoder that assigns first-seen integer
// indexes.
//
// Example:
//
//	enc := labello.NewOrdinalEncoder[string]()
//	_ = enc.Fit([]string{"a", "b", "a"})
//	enc.Transform([]string{"b", "a"}) // codes [1 0]
func NewOrdinalEncoder[T comparable]() *encoder.Encoder[T] {
	return encoder.NewOrdinal[T]()
}

// NewOneHotEncoder creates an encoder that assigns fixed-width bit vectors.
//
// After fitting N distinct categories every vector has the same width: the
// number of bits needed to represent N-1, and at least one bit.
func NewOneHotEncoder[T comparable]() *encoder.Encoder[T] {
	return encoder.NewOneHot[T]()
}

// NewCustomEncoder creates an encoder driven by a user-supplied mapping
// function. Fit fails with errs.ErrMappingFuncRequired unless
// encoder.WithMappingFunc is passed.
func NewCustomEncoder[T comparable]() *encoder.Encoder[T] {
	return encoder.NewCustom[T]()
}

// HashMapping returns a mapping function for string categories implementing
// the hashing trick: xxHash64 of the label reduced modulo buckets.
//
// Use it with the CustomMapping strategy when the category space is unbounded
// and a fixed code range matters more than reversibility; distinct labels
// may legally share a bucket. A buckets value of zero disables the reduction
// and yields the raw 64-bit hash.
func HashMapping(buckets uint64) func(string) uint64 {
	if buckets == 0 {
		return hash.ID
	}

	return func(label string) uint64 {
		return hash.ID(label) % buckets
	}
}

// CategoryID computes the xxHash64 identifier of a category label.
//
// The hash is deterministic and collision-resistant, making it suitable as a
// stable code for the CustomMapping strategy or as an external join key for
// encoded features.
func CategoryID(label string) uint64 {
	return hash.ID(label)
}
