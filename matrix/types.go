// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Enforce exclusive ownership: one matrix, one buffer, no aliasing.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// matErrorf wraps an error with a uniform method context and callsite
// indices. Stable, human-friendly messages; preserves the sentinel via %w.
func matErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a concrete row-major matrix of int.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
//
// The zero value is a valid empty matrix (0x0, no storage).
type Matrix struct {
	r, c int   // row and column counts (>= 0)
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an r×c zero matrix using row-major storage.
//
// Stage 1 (Validate): rows >= 0 and cols >= 0, else ErrBadShape; reject
// shapes whose element count overflows int with ErrTooBig.
// Stage 2 (Allocate): single flat buffer; make() zero-fills deterministically.
// Stage 3 (Finalize): return the new Matrix.
//
// Zero-sized shapes (0×c, r×0) are legal empty matrices. On any failure no
// storage is retained: the value is only constructed after the one backing
// allocation succeeds, so there is nothing to leak and nothing to double
// free.
//
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Matrix, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	// Guard the flat-buffer size computation.
	if cols > 0 && rows > math.MaxInt/cols {
		return nil, ErrTooBig
	}
	// Allocate a contiguous flat buffer (possibly zero-length).
	buf := make([]int, rows*cols)

	return &Matrix{r: rows, c: cols, data: buf}, nil
}

// Release drops the backing storage and resets the matrix to the empty
// state (0x0). Safe to call on a nil receiver, on an already-empty matrix,
// and repeatedly; every call after the first is a no-op.
//
// Storage is garbage-collected once unreferenced, so Release cannot double
// free; it exists to make end-of-life explicit and to let large buffers be
// reclaimed before the owning value goes out of scope.
//
// Complexity: O(1).
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// Rows returns the row count. Nil-safe. Complexity: O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. Nil-safe. Complexity: O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsEmpty reports whether the matrix holds no elements (either dimension
// zero, including the released and zero-value states). Complexity: O(1).
func (m *Matrix) IsEmpty() bool { return m.Rows() == 0 || m.Cols() == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods wrap with coordinates and
// method name. Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	if m == nil {
		return 0, matErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Set(row, col, v int) error {
	if m == nil {
		return matErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return matErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Mutations of the copy never affect the original.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i. The returned slice is caller-owned.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]int, error) {
	if m == nil {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String renders a bracketed, comma-separated dump for diagnostics.
// This is NOT the wire format; see package textcodec for that.
// Fixed traversal order. Complexity: O(r*c).
func (m *Matrix) String() string {
	if m == nil {
		return "[]"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString("[")
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// FromRows builds a matrix from a rectangular 2-D slice (deep copy).
//
// Stage 1 (Validate): every row must have the same length; ragged input
// fails with ErrDimensionMismatch. Nil/empty input yields a legal empty
// matrix.
// Stage 2 (Copy): rows are copied into a fresh flat buffer; the input is
// never retained.
//
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]int) (*Matrix, error) {
	r := len(rows)
	if r == 0 {
		return New(0, 0)
	}
	c := len(rows[0])

	m, err := New(r, c)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// ToRows exports the matrix as a freshly allocated 2-D slice (deep copy).
// Complexity: O(r*c) time and memory.
func (m *Matrix) ToRows() [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]int, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}
