// Package matrix provides a dense, row-major matrix of machine integers.
//
// The matrix package provides:
//
//   - Matrix, a concrete row-major container with safe At/Set accessors
//     (sentinel errors, never panics at the public surface).
//   - An in-place initialization family: Fill, Zero, Identity and a
//     deterministic, seedable Randomize.
//   - Pure arithmetic: Add, Scale, Transpose and Mul allocate a fresh
//     result and leave their operands untouched.
//   - Exact equality via Equal (shape first, then element-wise).
//
// All element values are plain int; addition and multiplication wrap per
// Go two's-complement semantics. Loop orders are fixed (row-major, inner
// index ascending), so every operation is bit-for-bit reproducible.
//
// Matrices exclusively own their backing storage: no constructor or
// operation ever aliases another matrix's buffer.
package matrix
