// SPDX-License-Identifier: MIT

// Package textcodec - file surface (Load / Save).
//
// Plain blocking I/O, reported once and terminal for the call: open, parse
// or dump, close. All errors are wrapped with the operation and path so
// callers can both errors.Is-match (fs.ErrNotExist, ErrFormat) and read a
// useful message.

package textcodec

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/intmat/matrix"
)

// Load opens path for reading, decodes one matrix and closes the file.
// Decode options (e.g. WithStrict) apply as in Parse.
func Load(path string, opts ...Option) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textcodec: load %q: %w", path, err)
	}
	defer f.Close() // read path: close error carries no data loss

	m, err := Read(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, fmt.Errorf("textcodec: load %q: %w", path, err)
	}

	return m, nil
}

// Save creates or truncates path and writes m in the wire format.
// The buffered writer is flushed and the file closed before returning;
// close errors are reported (write-behind caches can fail late).
func Save(m *matrix.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textcodec: save %q: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err = Write(m, bw); err != nil {
		_ = f.Close()
		return fmt.Errorf("textcodec: save %q: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("textcodec: save %q: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("textcodec: save %q: %w", path, err)
	}

	return nil
}
