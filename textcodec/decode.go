// SPDX-License-Identifier: MIT

// Package textcodec - two-pass decoder for the plain-text matrix format.
//
// Pass 1 fixes the dimensions: rows = count of non-blank lines, columns =
// token count of the first non-blank line. Pass 2 allocates once via
// matrix.New and fills cells line by line. The decoder never produces a
// partially-populated result: either a fully valid matrix comes back or
// (nil, error) and nothing to release.
//
// Tokens are maximal runs of non-space characters; consecutive or trailing
// separators never produce phantom empty tokens. A trailing '\r' is
// stripped so CRLF input decodes like LF input.

package textcodec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/intmat/matrix"
)

// Parse decodes a matrix from src.
// Empty input (or input of only blank lines) yields a legal 0x0 matrix.
// Complexity: O(len(src)).
func Parse(src string, opts ...Option) (*matrix.Matrix, error) {
	return decodeLines(splitLines(src), gatherOptions(opts...))
}

// Read decodes a matrix from r. The reader is consumed to EOF.
// Complexity: O(input size).
func Read(r io.Reader, opts ...Option) (*matrix.Matrix, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20) // allow long rows
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textcodec: read: %w", err)
	}

	return decodeLines(lines, gatherOptions(opts...))
}

// splitLines splits src on '\n', dropping the empty tail produced by a
// final newline so "1 \n" is one line, not two.
func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

// tokenize returns the space-separated tokens of line. Empty runs between
// consecutive separators and a trailing '\r' are dropped, so blank and
// whitespace-only lines come back as zero tokens.
func tokenize(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	var toks []string
	for _, f := range strings.Split(line, " ") {
		if f != "" {
			toks = append(toks, f)
		}
	}

	return toks
}

// decodeLines is the shared two-pass core behind Parse and Read.
func decodeLines(lines []string, o Options) (*matrix.Matrix, error) {
	// Pass 1: discover dimensions. Blank lines (zero tokens) are skipped
	// entirely; they neither count as rows nor terminate parsing.
	rows, cols := 0, 0
	for _, line := range lines {
		toks := tokenize(line)
		if len(toks) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(toks) // column count fixed by the first data line
		}
		rows++
	}

	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("textcodec: allocate %dx%d: %w", rows, cols, err)
	}

	// Pass 2: fill cells. Permissive mode ignores excess tokens and leaves
	// cells of short rows at their zero-fill from allocation; strict mode
	// rejects both as ragged rows. Diagnostics cite the 1-based input line
	// number, not the data-row index: with blank lines interleaved the two
	// diverge, and only the line number is actionable against the file.
	row := 0
	var col, v int
	for idx, line := range lines {
		toks := tokenize(line)
		if len(toks) == 0 {
			continue
		}
		if o.strict && len(toks) != cols {
			return nil, fmt.Errorf("textcodec: line %d has %d tokens, want %d: %w",
				idx+1, len(toks), cols, ErrFormat)
		}
		for col = 0; col < len(toks) && col < cols; col++ {
			if o.strict {
				v, err = strconv.Atoi(toks[col])
				if err != nil {
					return nil, fmt.Errorf("textcodec: line %d, token %q: %w",
						idx+1, toks[col], ErrFormat)
				}
			} else {
				v = parseLeadingInt(toks[col])
			}
			// Loop bounds keep (row,col) valid; Set cannot fail here.
			_ = m.Set(row, col, v)
		}
		row++
	}

	return m, nil
}

// parseLeadingInt implements the permissive atoi rule: an optional sign
// followed by the leading digit run; anything else, including an empty
// digit run, contributes 0. Accumulation wraps like the rest of the
// package's int arithmetic.
func parseLeadingInt(tok string) int {
	i, neg := 0, false
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		neg = tok[i] == '-'
		i++
	}
	n := 0
	for ; i < len(tok); i++ {
		d := tok[i]
		if d < '0' || d > '9' {
			break
		}
		n = n*10 + int(d-'0')
	}
	if neg {
		return -n
	}

	return n
}
