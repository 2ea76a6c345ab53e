// Package intmat is a small, deterministic toolkit for dense integer
// matrices: allocation, in-place initialization, exact equality,
// integer arithmetic, and a whitespace-delimited text file format.
//
// 🚀 What is intmat?
//
//	A focused library that brings together:
//		• Core type: row-major dense matrices of int with safe At/Set
//		• Init family: Fill, Zero, Identity, deterministic Randomize
//		• Arithmetic: Add, Scale, Transpose, Mul (all pure, all exact)
//		• Text codec: space-separated rows, blank-line tolerant parsing
//		• File API: Load and Save for the plain-text wire format
//
// ✨ Why choose intmat?
//
//   - Exact – integers in, integers out; no epsilon, no rounding
//   - Deterministic – fixed loop orders, seedable RNG, reproducible tests
//   - Safe – sentinel errors instead of panics at the public surface
//   - Small – two packages and one CLI; read it all in one sitting
//
// Everything is organized under two subpackages and a command:
//
//	matrix/      — the Matrix type, lifecycle, init family & arithmetic
//	textcodec/   — text format encoder/decoder + Load/Save file surface
//	cmd/matcalc/ — command-line calculator over matrix files
//
// Quick example:
//
//	m, _ := matrix.New(3, 3)
//	_ = m.Identity()
//	fmt.Print(textcodec.Encode(m))
//
// See the example tests in each package for more.
package intmat
