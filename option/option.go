// Package option contains utility to use the variadic options pattern, and the options shared
// by every container of this module.
package option

import "github.com/rs/zerolog"

// Option represents a function that modifies options of type T.
type Option[T any] func(opts *T)

// Build applies a series of options to the default options struct and returns the modified result.
func Build[T any](defaultOpts *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		opt(defaultOpts)
	}
	return defaultOpts
}

// Container holds the options of a Map or a Set.
type Container struct {
	// Logger receives the container events, it is never nil once built through Defaults.
	Logger *zerolog.Logger

	// TruthyLookup switches lookups to the legacy truthiness rules: a Map entry holding a
	// falsy value is reported as absent by Has (and cannot be deleted), and a Set element
	// stored under index 0 cannot be deleted.
	TruthyLookup bool
}

// Defaults returns the default container options: silent logger, presence based lookups.
func Defaults() *Container {
	logger := zerolog.Nop()
	return &Container{Logger: &logger}
}

// BuildContainer applies the given options on top of the defaults.
func BuildContainer(opts ...Option[Container]) *Container {
	built := Build(Defaults(), opts...)
	if built.Logger == nil {
		nop := zerolog.Nop()
		built.Logger = &nop
	}
	return built
}

// WithLogger makes the container log through the given logger.
func WithLogger(logger *zerolog.Logger) Option[Container] {
	return func(opts *Container) {
		opts.Logger = logger
	}
}

// WithTruthyLookup enables the legacy truthiness based lookups.
func WithTruthyLookup() Option[Container] {
	return func(opts *Container) {
		opts.TruthyLookup = true
	}
}

// Inherit copies already built options, used when a container derives a new one.
func Inherit(from *Container) Option[Container] {
	return func(opts *Container) {
		*opts = *from
	}
}
