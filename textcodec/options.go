// SPDX-License-Identifier: MIT

// Package textcodec: functional configuration for decoding.
// Mirrors the option plumbing used across the module: an opaque Options
// struct, WithX constructors, and an internal gatherOptions resolver.

package textcodec

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective decode configuration. Fields are unexported;
// public entry points accept `...Option` and resolve them via
// gatherOptions.
type Options struct {
	strict bool // reject ragged rows and non-integer tokens
}

// WithStrict makes decoding reject ragged rows (short or long) and
// non-integer tokens with ErrFormat, instead of the default permissive
// zero-fill / ignore / atoi behavior.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions applies setters over the permissive defaults.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
