// Package bitvec implements the fixed-width bit vectors used as one-hot
// codes.
//
// A Vector stores bits most-significant first, so the vector for index 2 at
// width 3 reads "010". All vectors produced by a single fit share one width:
// the bit-length of the largest assigned index, with a minimum of one bit.
package bitvec

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/arloliu/labello/errs"
)

// Vector is a fixed-width bit vector, most-significant bit first.
type Vector []bool

// WidthFor returns the common vector width for n distinct categories: the
// number of bits needed to represent the largest index n-1 in binary.
// By convention the width is never less than one bit, so n <= 2 yields 1.
func WidthFor(n int) int {
	if n <= 0 {
		return 0
	}

	width := bits.Len64(uint64(n - 1))
	if width == 0 {
		width = 1
	}

	return width
}

// FromIndex converts an integer index to its binary representation,
// left-padded with zeros to the given width.
//
// Returns an error if the index does not fit in width bits. A non-binary
// digit in the textual conversion is an internal invariant failure and
// surfaces as errs.ErrNonBinaryDigit; it cannot occur with a correct
// strconv.
func FromIndex(idx uint64, width int) (Vector, error) {
	digits := strconv.FormatUint(idx, 2)
	if len(digits) > width {
		return nil, fmt.Errorf("index %d does not fit in %d bits", idx, width)
	}

	vec := make(Vector, width)
	offset := width - len(digits)
	for i, d := range digits {
		switch d {
		case '1':
			vec[offset+i] = true
		case '0':
			vec[offset+i] = false
		default:
			return nil, fmt.Errorf("%w: %q", errs.ErrNonBinaryDigit, d)
		}
	}

	return vec, nil
}

// Equal reports whether v and other have the same width and bits.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}

	return true
}

// Uint64 packs the vector into an unsigned integer, undoing FromIndex.
// Vector widths never exceed 64 bits because indexes are 64-bit integers.
func (v Vector) Uint64() uint64 {
	var out uint64
	for _, bit := range v {
		out <<= 1
		if bit {
			out |= 1
		}
	}

	return out
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// String renders the vector as a binary literal, e.g. "010".
func (v Vector) String() string {
	buf := make([]byte, len(v))
	for i, bit := range v {
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf)
}
