package encoder

import (
	"github.com/arloliu/labello/errs"
	"github.com/arloliu/labello/internal/options"
)

// FitConfig holds per-fit configuration. It belongs to a single Fit call,
// not to the encoder; a later Fit starts from a fresh config.
type FitConfig[T comparable] struct {
	maxClasses  uint64
	mappingFunc func(T) uint64
}

// FitOption is a functional option for configuring a single Fit call.
type FitOption[T comparable] = options.Option[*FitConfig[T]]

// WithMaxClasses caps the number of distinct ordinal indexes at n.
//
// Once index n-1 has been assigned, every category discovered afterwards
// shares that final index (a ceiling collision). This deliberately merges
// overflow categories into one bucket so unbounded-cardinality features
// cannot grow the mapping without limit. It applies to the Ordinal strategy
// only; one-hot index assignment has no ceiling.
//
// n must be at least 1; Fit fails with errs.ErrInvalidMaxClasses otherwise.
func WithMaxClasses[T comparable](n uint64) FitOption[T] {
	return options.New(func(cfg *FitConfig[T]) error {
		if n == 0 {
			return errs.ErrInvalidMaxClasses
		}
		cfg.maxClasses = n

		return nil
	})
}

// WithMappingFunc supplies the user-defined code function for the
// CustomMapping strategy. The function is invoked once per distinct
// category, at its first occurrence in the fit data.
//
// Injectivity is not enforced: two categories may map to the same code, in
// which case InverseTransform expands that code to all of them.
func WithMappingFunc[T comparable](fn func(T) uint64) FitOption[T] {
	return options.NoError(func(cfg *FitConfig[T]) {
		cfg.mappingFunc = fn
	})
}
