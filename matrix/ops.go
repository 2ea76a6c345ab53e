// SPDX-License-Identifier: MIT

// Package matrix - pure arithmetic kernels.
//
// Purpose:
//   - Equal, Add, Scale, Transpose and Mul as package-level pure functions:
//     operands are never modified, results are freshly allocated.
//   - Fixed loop orders (row-major; Mul accumulates in ascending k) so
//     results are reproducible even where wrap-around makes the summation
//     order observable.
//
// Overflow policy:
//   - Addition and multiplication wrap per Go two's-complement int
//     semantics. This is the documented contract: a plain-int matrix does
//     no checked arithmetic.
//
// Atomicity:
//   - Every kernel validates before it allocates; on error the caller
//     receives (nil, err) and nothing to release.

package matrix

import "fmt"

// opErrorf tags a sentinel with the failing operation and the operand
// shapes, per the diagnostic contract (name the operation, name the
// dimensions).
func opErrorf(op string, ar, ac, br, bc int, err error) error {
	return fmt.Errorf("%s(%dx%d, %dx%d): %w", op, ar, ac, br, bc, err)
}

// Equal reports whether a and b have identical shape and identical
// elements. Shape mismatch short-circuits to false. Nil and empty matrices
// of the same shape are equal. No side effects, no allocation.
// Complexity: O(r*c) worst case.
func Equal(a, b *Matrix) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if a.IsEmpty() { // same shape, nothing to compare
		return true
	}
	var i int
	for i = range a.data { // flat element-wise pass
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Add returns the element-wise sum a + b as a new matrix.
//
// Stage 1 (Validate): both non-nil and same shape, else
// ErrDimensionMismatch.
// Stage 2 (Allocate): result via New (zeroed flat buffer).
// Stage 3 (Execute): single flat pass; addition wraps on overflow.
//
// Complexity: O(r*c) time and memory.
func Add(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf("Add", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := New(a.r, a.c)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	var i int
	for i = range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out, nil
}

// Scale returns m with every element multiplied by k, as a new matrix.
// Multiplication wraps on overflow.
// Complexity: O(r*c) time and memory.
func Scale(m *Matrix, k int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}
	out, err := New(m.r, m.c)
	if err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}
	var i int
	for i = range m.data {
		out.data[i] = m.data[i] * k
	}

	return out, nil
}

// Transpose returns the c×r transpose of m as a new matrix:
// out[j][i] = m[i][j].
//
// Loop order is source-row-major; the scattered writes into the result are
// the standard cost of an out-of-place transpose.
// Complexity: O(r*c) time and memory.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	out, err := New(m.c, m.r)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[base+j]
		}
	}

	return out, nil
}

// Mul returns the matrix product a·b as a new (a.Rows × b.Cols) matrix.
//
// Stage 1 (Validate): both non-nil; a.Cols == b.Rows, else
// ErrDimensionMismatch.
// Stage 2 (Allocate): zeroed result via New.
// Stage 3 (Execute): i → j → k loops with k ascending, so each cell is the
// left-to-right sum Σ_k a[i][k]*b[k][j]; with wrap-around arithmetic the
// fixed order keeps results reproducible.
//
// Complexity: O(r*n*c) time, O(r*c) memory.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateMulCompat(a, b); err != nil {
		return nil, opErrorf("Mul", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := New(a.r, b.c)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	var i, j, k int
	var acc int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = 0
			for k = 0; k < a.c; k++ { // ascending k: fixed summation order
				acc += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			out.data[i*out.c+j] = acc
		}
	}

	return out, nil
}
