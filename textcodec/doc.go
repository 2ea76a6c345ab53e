// Package textcodec reads and writes integer matrices in a plain-text,
// whitespace-delimited format.
//
// The wire format is one matrix row per line: decimal values separated by
// single ASCII spaces, each value followed by one space, each line
// terminated by '\n'. There is no header; dimensions are inferred from the
// content itself (rows = non-blank line count, columns = token count of the
// first non-blank line). Blank lines are legal anywhere in the input and
// are skipped.
//
// Decoding is two-pass and, by default, permissive:
//
//   - tokens beyond the column count on a line are ignored,
//   - lines with fewer tokens than columns leave the remaining cells zero,
//   - a token parses as its leading optional-sign digit run ("12ab" is 12,
//     "ab" is 0), the atoi rule.
//
// WithStrict upgrades ragged rows and non-integer tokens to ErrFormat.
//
// The file surface is Load and Save; Encode/Write and Parse/Read operate on
// strings, readers and writers for callers that manage I/O themselves.
package textcodec
