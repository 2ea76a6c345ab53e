// SPDX-License-Identifier: MIT

// Package textcodec - encoder for the plain-text matrix format.
//
// Layout contract (kept exactly, round-trip depends on it):
//   - one line per row, '\n' terminated,
//   - every value followed by a single space, including the last on the
//     line (so a line reads "1 2 \n", not "1 2\n").

package textcodec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/intmat/matrix"
)

// Encode renders m in the wire format and returns it as a string.
// A nil or empty matrix encodes to "".
// Complexity: O(r*c).
func Encode(m *matrix.Matrix) string {
	var b strings.Builder
	_ = Write(m, &b) // strings.Builder never returns a write error

	return b.String()
}

// Write streams m in the wire format to w.
// Row-major, fixed order; a nil or zero-row matrix writes nothing.
// Write errors are returned wrapped, first failure terminates the dump.
// Complexity: O(r*c).
func Write(m *matrix.Matrix, w io.Writer) error {
	rows, cols := m.Shape()
	var i, j, v int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds are loop-controlled; cannot fail
			if _, err = io.WriteString(w, strconv.Itoa(v)); err != nil {
				return fmt.Errorf("textcodec: write row %d: %w", i, err)
			}
			if _, err = io.WriteString(w, " "); err != nil {
				return fmt.Errorf("textcodec: write row %d: %w", i, err)
			}
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("textcodec: write row %d: %w", i, err)
		}
	}

	return nil
}
