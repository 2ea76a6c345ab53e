// SPDX-License-Identifier: MIT

// Package matrix - in-place initialization family.
//
// Purpose:
//   - Overwrite an already-allocated matrix with a constant, zeros, the
//     identity pattern, or uniform random integers.
//   - Keep all loops deterministic (row-major, ascending indices).
//
// All initializers are no-ops on empty matrices: there are no cells to
// write, and "initialize nothing" is not an error. Fill and Zero tolerate
// nil receivers; Identity and Randomize report ErrNilMatrix.

package matrix

import "math"

// Fill overwrites every element with v.
// Complexity: O(r*c).
func (m *Matrix) Fill(v int) {
	if m == nil {
		return
	}
	var i int
	for i = range m.data { // flat pass over the row-major buffer
		m.data[i] = v
	}
}

// Zero overwrites every element with 0. Equivalent to Fill(0).
// Complexity: O(r*c).
func (m *Matrix) Zero() { m.Fill(0) }

// Identity zeroes the matrix and sets each diagonal element to 1.
//
// Stage 1 (Validate): the receiver must be square, else ErrNonSquare.
// Stage 2 (Execute): Zero, then walk the diagonal.
//
// The empty 0x0 matrix is square and succeeds trivially.
// Complexity: O(r*c).
func (m *Matrix) Identity() error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	m.Zero()
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1 // diagonal offset i*c + i
	}

	return nil
}

// Randomize fills every element with a value drawn independently and
// uniformly from the closed interval [min, max].
//
// Stage 1 (Validate): min <= max, else ErrBadRange.
// Stage 2 (Resolve): pick the generator from opts (injected rng, or a
// deterministic stream from WithSeed/WithStream; the default is a fixed
// documented seed - never wall-clock time).
// Stage 3 (Execute): one flat pass in row-major order.
//
// The interval width is computed in uint64, where it is exact for every
// legal [min,max] including full-int-range bounds: two's-complement
// subtraction gives the true width, and only the complete range wraps to 0.
// Widths within int64 draw via Int63n (exactly uniform); wider intervals
// reduce a Uint64 draw modulo the width (bias below 2^-63, as the width
// already exceeds 2^63).
// Complexity: O(r*c).
func (m *Matrix) Randomize(min, max int, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if min > max {
		return ErrBadRange
	}
	rng := gatherOptions(opts...)

	width := uint64(max) - uint64(min) + 1 // closed interval width; 0 means the full int range
	var i int
	for i = range m.data {
		switch {
		case width == 0:
			// [min,max] covers every representable int; any draw is in range.
			m.data[i] = int(rng.Uint64())
		case width <= math.MaxInt64:
			m.data[i] = int(int64(min) + rng.Int63n(int64(width)))
		default:
			// Offset in uint64 wraps back to exactly min+offset <= max.
			m.data[i] = int(uint64(min) + rng.Uint64()%width)
		}
	}

	return nil
}
