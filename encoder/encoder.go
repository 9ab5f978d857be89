// Package encoder implements the categorical-label encoding engine.
//
// An Encoder learns a category→code mapping from training data (Fit), applies
// it to arbitrary data (Transform) and recovers categories from codes
// (InverseTransform). Exactly one encoding strategy is chosen at construction
// time:
//
//   - Ordinal: first-seen integer indexes, optionally capped by a class
//     ceiling that merges overflow categories into the final index
//   - OneHot: fixed-width bit vectors derived from first-seen indexes
//   - CustomMapping: a user-supplied code function
//
// Fit requires exclusive access; once it has returned, Transform and
// InverseTransform are read-only and safe for concurrent use.
package encoder

import (
	"fmt"
	"math"

	"github.com/arloliu/labello/bitvec"
	"github.com/arloliu/labello/errs"
	"github.com/arloliu/labello/format"
	"github.com/arloliu/labello/internal/options"
)

// Encoder maps hashable category values of type T to compact codes.
//
// The zero value is not usable; construct encoders with New or one of the
// strategy-specific constructors. The mapping starts empty, is built by Fit
// and is wholly replaced by a subsequent Fit.
type Encoder[T comparable] struct {
	strategy format.StrategyType

	codes   map[T]uint64        // Ordinal and CustomMapping codes
	vectors map[T]bitvec.Vector // OneHot codes
	order   []T                 // distinct categories in first-seen order

	// reverse maps each code (bit vectors via their exact uint64 packing) to
	// the categories that share it, in first-seen order. Rebuilt on every
	// Fit so InverseTransform is O(1) per code instead of a mapping scan.
	reverse map[uint64][]T

	maxIndex uint64 // highest ordinal index assigned by the last Fit
	width    int    // common bit-vector width of the last OneHot Fit
}

// New creates an empty encoder for the given strategy. A zero StrategyType
// defaults to Ordinal; any other unknown value is rejected.
func New[T comparable](strategy format.StrategyType) (*Encoder[T], error) {
	if strategy == 0 {
		strategy = format.StrategyOrdinal
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidStrategy, strategy)
	}

	enc := &Encoder[T]{strategy: strategy}
	enc.reset()

	return enc, nil
}

// NewOrdinal creates an empty Ordinal encoder.
func NewOrdinal[T comparable]() *Encoder[T] {
	enc, _ := New[T](format.StrategyOrdinal)
	return enc
}

// NewOneHot creates an empty OneHot encoder.
func NewOneHot[T comparable]() *Encoder[T] {
	enc, _ := New[T](format.StrategyOneHot)
	return enc
}

// NewCustom creates an empty CustomMapping encoder. Fit requires a
// WithMappingFunc option.
func NewCustom[T comparable]() *Encoder[T] {
	enc, _ := New[T](format.StrategyCustom)
	return enc
}

// Strategy returns the encoding strategy chosen at construction.
func (e *Encoder[T]) Strategy() format.StrategyType {
	return e.strategy
}

// Fit learns the category→code mapping from data in a single in-order pass,
// replacing any previously learned mapping.
//
// Only the first occurrence of each distinct category fixes its code; later
// occurrences never update an existing entry. Per strategy:
//
//   - Ordinal: indexes are assigned from 0 in first-seen order. With
//     WithMaxClasses(k) the index counter saturates at k-1 and every
//     category discovered after that shares the final index.
//   - OneHot: indexes are assigned the same way but without any ceiling,
//     then converted to bit vectors of one common width (the bit-length of
//     the largest index, at least one bit, left-zero-padded).
//   - CustomMapping: each new category's code is mapping_fn(category).
//
// Returns a configuration error (errs.ErrMappingFuncRequired,
// errs.ErrInvalidMaxClasses) before any mapping mutation occurs.
func (e *Encoder[T]) Fit(data []T, opts ...FitOption[T]) error {
	cfg, err := applyFitOptions(opts)
	if err != nil {
		return err
	}
	if e.strategy == format.StrategyCustom && cfg.mappingFunc == nil {
		return errs.ErrMappingFuncRequired
	}

	e.reset()

	switch e.strategy {
	case format.StrategyOrdinal:
		e.fitOrdinal(data, cfg.maxClasses)
	case format.StrategyOneHot:
		return e.fitOneHot(data)
	case format.StrategyCustom:
		e.fitCustom(data, cfg.mappingFunc)
	}

	return nil
}

// FitTransform fits the encoder on data and returns its transform in one
// call.
func (e *Encoder[T]) FitTransform(data []T, opts ...FitOption[T]) (Transform, error) {
	if err := e.Fit(data, opts...); err != nil {
		return Transform{}, err
	}

	return e.Transform(data), nil
}

// Transform encodes data using the learned mapping.
//
// Categories absent from the mapping are silently skipped, so the result may
// be shorter than the input; callers that care about data loss can compare
// lengths. Transform never mutates the mapping, and an unfitted encoder
// yields an empty transform.
func (e *Encoder[T]) Transform(data []T) Transform {
	if e.strategy == format.StrategyOneHot {
		vecs := make([]bitvec.Vector, 0, len(data))
		for _, el := range data {
			if vec, ok := e.vectors[el]; ok {
				vecs = append(vecs, vec)
			}
		}

		return Transform{strategy: e.strategy, vectors: vecs}
	}

	codes := make([]uint64, 0, len(data))
	for _, el := range data {
		if code, ok := e.codes[el]; ok {
			codes = append(codes, code)
		}
	}

	return Transform{strategy: e.strategy, codes: codes}
}

// InverseTransform recovers original categories from encoded output.
//
// Each code expands to every category that maps to it: under a ceiling
// collision, or with a non-injective custom mapping, one input code can
// therefore produce several output elements. Codes with no matching category
// contribute nothing. The lookup is by value equality: exact bit-vector
// equality for OneHot, integer equality otherwise.
//
// Returns errs.ErrStrategyMismatch when the transform's shape does not match
// the encoder's strategy.
func (e *Encoder[T]) InverseTransform(tr Transform) ([]T, error) {
	if tr.strategy != e.strategy {
		return nil, fmt.Errorf("%w: %s data given to %s encoder",
			errs.ErrStrategyMismatch, tr.strategy, e.strategy)
	}

	if e.strategy == format.StrategyOneHot {
		out := make([]T, 0, len(tr.vectors))
		for _, vec := range tr.vectors {
			if len(vec) != e.width {
				continue
			}
			out = append(out, e.reverse[vec.Uint64()]...)
		}

		return out, nil
	}

	out := make([]T, 0, len(tr.codes))
	for _, code := range tr.codes {
		out = append(out, e.reverse[code]...)
	}

	return out, nil
}

// NumClasses returns the number of distinct classes in the mapping.
//
// For Ordinal encoders this is the highest assigned index plus one, not the
// raw key count: after a ceiling collision it reports the ceiling-bounded
// class count, which is the observable signal that the collision policy took
// effect. OneHot and CustomMapping encoders report the distinct key count.
func (e *Encoder[T]) NumClasses() int {
	switch e.strategy {
	case format.StrategyOrdinal:
		if len(e.codes) == 0 {
			return 0
		}

		return int(e.maxIndex) + 1
	case format.StrategyOneHot:
		return len(e.vectors)
	default:
		return len(e.codes)
	}
}

// Uniques returns all categories currently in the mapping. Order is not part
// of the contract.
func (e *Encoder[T]) Uniques() []T {
	out := make([]T, len(e.order))
	copy(out, e.order)

	return out
}

// reset discards the learned mapping, leaving the encoder as constructed.
func (e *Encoder[T]) reset() {
	e.codes = make(map[T]uint64)
	e.vectors = make(map[T]bitvec.Vector)
	e.order = e.order[:0]
	e.reverse = make(map[uint64][]T)
	e.maxIndex = 0
	e.width = 0
}

func (e *Encoder[T]) fitOrdinal(data []T, maxClasses uint64) {
	limit := uint64(math.MaxUint64)
	if maxClasses > 0 {
		limit = maxClasses - 1
	}

	var next uint64
	for _, el := range data {
		if _, ok := e.codes[el]; ok {
			continue
		}
		e.codes[el] = next
		e.order = append(e.order, el)
		e.reverse[next] = append(e.reverse[next], el)
		e.maxIndex = next
		if next < limit {
			next++
		}
	}
}

func (e *Encoder[T]) fitOneHot(data []T) error {
	// First-seen index assignment, no ceiling.
	interim := make(map[T]uint64, len(data))
	var next uint64
	for _, el := range data {
		if _, ok := interim[el]; ok {
			continue
		}
		interim[el] = next
		e.order = append(e.order, el)
		next++
	}

	e.width = bitvec.WidthFor(len(interim))
	for _, el := range e.order {
		vec, err := bitvec.FromIndex(interim[el], e.width)
		if err != nil {
			return err
		}
		e.vectors[el] = vec
		packed := vec.Uint64()
		e.reverse[packed] = append(e.reverse[packed], el)
	}

	return nil
}

func (e *Encoder[T]) fitCustom(data []T, fn func(T) uint64) {
	for _, el := range data {
		if _, ok := e.codes[el]; ok {
			continue
		}
		code := fn(el)
		e.codes[el] = code
		e.order = append(e.order, el)
		e.reverse[code] = append(e.reverse[code], el)
	}
}

func applyFitOptions[T comparable](opts []FitOption[T]) (*FitConfig[T], error) {
	cfg := &FitConfig[T]{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
