// SPDX-License-Identifier: MIT

// Package matrix provides validated dense numeric matrices.
//
// The matrix package provides:
//
//   - Grid[T], a generic fixed-shape row-major container whose cells are
//     checked by a pluggable CellValidator on construction and on Set.
//   - Dense, the float64 variant, rejecting NaN and ±Inf unless built with
//     WithNoValidateNaNInf.
//   - Pure arithmetic (Add, Subtract, Multiply, MultiplyByScalar,
//     ChangeSign, Transpose) returning new matrices, and in-place variants
//     that overwrite the receiver all-or-nothing.
//   - MultiplyParallel, a row-blocked concurrent product equal to Multiply
//     bit for bit.
//   - IsEqual (tolerance Epsilon·max(1,|a|,|b|)), IsEqualExactly and AllClose.
//   - Free functions (Add, Sub, Mul, Transpose, Scale) over the Matrix
//     interface with *Dense fast paths.
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch, ...)
// wrapped with operation context; match them with errors.Is. Malformed
// input errors also match ErrInvalidArgument.
//
// A *Dense is not safe for concurrent mutation; callers serialize access.
package matrix
