// Package options implements generic functional options shared by the
// configurable surfaces of labello (fit configuration, blob encoding).
package options

// Option configures a target of type T and may reject invalid values.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New wraps a fallible configuration function as an Option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError wraps an infallible configuration function as an Option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply runs each option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
