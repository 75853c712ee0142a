// SPDX-License-Identifier: MIT

// Package matrix - Dense: numeric row-major matrix over Grid[float64].
//
// Purpose:
//   - Bind the generic storage to float64 cells and the finite-value policy.
//   - Carry per-matrix configuration (epsilon, NaN/Inf policy, workers) so
//     results of arithmetic inherit the receiver's behavior.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// AI-Hints:
//   - Prefer the *Dense methods in hot loops; free functions in methods.go
//     fall back to the Matrix interface for foreign implementations.
//   - DefaultValidateNaNInf is on; pass WithNoValidateNaNInf to relax it.
//
// Complexity quicksheet:
//   - NewDense/Fill/Identity/NewFromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxDense       = "Dense"
	ctxNewDense    = "NewDense"
	ctxNewFromRows = "NewFromRows"
	ctxFill        = "Fill"
	ctxIdentity    = "Identity"
)

// Dense is a concrete row-major float64 matrix with a fixed shape.
//   - g holds storage, dimensions and the cell validator.
//   - opts is the resolved configuration inherited by derived matrices.
//
// The zero value is only usable as a decoding target (see UnmarshalYAML).
type Dense struct {
	g    *Grid[float64]
	opts Options
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Errors: ErrInvalidDimensions when rows < 1 or cols < 1.
// Complexity: O(r*c) zero-init.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, matrixErrorf(ctxNewDense, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{g: newGrid(rows, cols, o.cellValidator()), opts: o}, nil
}

// NewFromRows copies data (a sequence of equally long rows) into a new matrix.
// MAIN DESCRIPTION:
//   - The primary constructor from literal or decoded data.
//
// Errors:
//   - ErrInvalidDimensions for empty input.
//   - ErrInconsistentRows when row lengths differ.
//   - ErrNaNInf (with coordinates) under the default numeric policy.
//
// Complexity: O(r*c).
func NewFromRows(data [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	g, err := NewGrid(data, o.cellValidator())
	if err != nil {
		return nil, matrixErrorf(ctxNewFromRows, err)
	}

	return &Dense{g: g, opts: o}, nil
}

// Fill returns a rows×cols matrix with every cell equal to v.
// Errors: ErrInvalidDimensions; ErrNaNInf for non-finite v under the policy.
func Fill(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	g, err := FillGrid(rows, cols, v, o.cellValidator())
	if err != nil {
		return nil, matrixErrorf(ctxFill, err)
	}

	return &Dense{g: g, opts: o}, nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Errors: ErrInvalidDimensions when n < 1.
func Identity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.g.data[i*n+i] = 1
	}

	return m, nil
}

// derive wraps freshly computed storage in a matrix sharing m's configuration.
func (m *Dense) derive(g *Grid[float64]) *Dense {
	return &Dense{g: g, opts: m.opts}
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.g.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.g.c }

// Size returns Rows()*Cols().
func (m *Dense) Size() int { return m.g.Size() }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.g.Shape() }

// Epsilon returns the tolerance used by IsEqual.
func (m *Dense) Epsilon() float64 { return m.opts.eps }

// ValidatesNaNInf reports whether the matrix rejects non-finite cells.
func (m *Dense) ValidatesNaNInf() bool { return m.opts.validateNaNInf }

// At returns the element at (row, col).
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	v, err := m.g.At(row, col)
	if err != nil {
		return 0, matrixErrorf(ctxDense, err)
	}

	return v, nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf for non-finite v under the policy.
func (m *Dense) Set(row, col int, v float64) error {
	if err := m.g.Set(row, col, v); err != nil {
		return matrixErrorf(ctxDense, err)
	}

	return nil
}

// IsSet reports whether (row, col) lies inside the shape.
func (m *Dense) IsSet(row, col int) bool { return m.g.IsSet(row, col) }

// Unset always returns ErrUnsupported.
func (m *Dense) Unset(row, col int) error {
	return matrixErrorf(ctxDense, m.g.Unset(row, col))
}

// Clone returns a deep copy with the same configuration.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy is Clone without the interface conversion.
func (m *Dense) Copy() *Dense { return m.derive(m.g.Clone()) }

// ToSlice returns the cells as fresh rows.
func (m *Dense) ToSlice() [][]float64 { return m.g.ToSlice() }

// String renders one "[a, b, ...]" line per row.
func (m *Dense) String() string { return m.g.String() }
