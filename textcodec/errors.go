// SPDX-License-Identifier: MIT
// Package textcodec: sentinel error set.

package textcodec

import "errors"

// ErrFormat is returned in strict mode for malformed textual content:
// a ragged row (token count differing from the column count fixed by the
// first non-blank line) or a token that is not a valid decimal integer.
// Wrapped with the 1-based input line number at the detection site; match
// with errors.Is.
var ErrFormat = errors.New("textcodec: malformed matrix text")
