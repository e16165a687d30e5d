package ramp

type Options[T any] struct {
	defaultValue T
}

type Option[T any] func(o *Options[T])

func optionNew[T any](option ...Option[T]) *Options[T] {
	opts := &Options[T]{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

// WithDefault sets the value inserted at 0 and 1 when those positions are not
// supplied. Without it the zero value of T is used.
func WithDefault[T any](v T) Option[T] {
	return func(o *Options[T]) {
		o.defaultValue = v
	}
}
