// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap once at the public surface (see
// matErrorf) so callers can still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows < 0 or
	// cols < 0). Constructors must validate before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrTooBig is returned when rows*cols does not fit in int, i.e. the
	// backing storage cannot be allocated as a single flat buffer.
	ErrTooBig = errors.New("matrix: shape exceeds addressable storage")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Identity) but
	// the receiver wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadRange signals an invalid [min,max] interval (min > max) passed
	// to Randomize.
	ErrBadRange = errors.New("matrix: invalid value range")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is
	// required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
