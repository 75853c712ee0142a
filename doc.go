// SPDX-License-Identifier: MIT

// Package mathobjects is a small toolkit of exact and numeric mathematical
// objects: mixed-number rationals on int64 fields and validated dense
// float64 matrices.
//
// What is inside?
//
//	• rational: canonical whole + numerator/denominator values, parsing
//	  ("-10 18/16"), formatting, checked arithmetic, FromFloat
//	• matrix: Grid[T] storage with pluggable cell validation, Dense
//	  arithmetic (pure and in-place), tolerance equality, a concurrent
//	  MultiplyParallel
//	• mathutil: GCD and overflow-checked int64 helpers
//	• cmd/mathobj: a command line front end and an interactive calculator
//
// Quick Start:
//
//	r, _ := rational.FromString("5 6/7")
//	q, _ := r.Divide(rational.MustParse("-3 3/8"))
//	fmt.Println(q) // -1 139/189
//
//	a, _ := matrix.Identity(3)
//	b, _ := matrix.Fill(3, 3, 2)
//	p, _ := a.Multiply(b) // every cell is 2
//
// Errors are package sentinels matched with errors.Is; no function panics
// on user input (MustNew and MustParse are the literal helpers that do).
//
// See the package docs of rational and matrix for the full contracts.
package mathobjects
