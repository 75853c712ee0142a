// SPDX-License-Identifier: MIT

// Package matrix - generic fixed-shape storage with pluggable cell validation.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j
//     for any cell type T.
//   - Validate input data once: non-empty, rectangular, every cell accepted
//     by the variant's CellValidator.
//   - Keep the shape fixed: cells change only through Set and the in-place
//     operations of concrete variants, never through structural edits.
//
// AI-Hints:
//   - Dense is the numeric variant: Grid[float64] + finite-cell validator.
//   - A nil CellValidator accepts every value.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c); At/Set/IsSet: O(1); Clone/Transpose/ToSlice: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewGrid  = "NewGrid"
	ctxFillGrid = "FillGrid"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxUnset    = "Unset"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// CellValidator accepts or rejects a single cell value. It returns a
// sentinel (e.g. ErrNaNInf); the grid adds method and coordinate context.
type CellValidator[T any] func(v T) error

// Grid is a rectangular, row-major container of T with a fixed shape.
//   - r, c hold dimensions (both >= 1 for grids built by public constructors).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - validate is the variant-specific cell predicate (may be nil).
type Grid[T any] struct {
	r, c     int
	data     []T
	validate CellValidator[T]
}

// NewGrid copies data into a new Grid after validating it.
// MAIN DESCRIPTION:
//   - Public constructor for generic storage from an ordered sequence of rows.
//
// Implementation:
//   - Stage 1: validateData checks rows>=1, cols>=1 and equal row lengths.
//   - Stage 2: run the variant validator on every cell (row-major order).
//   - Stage 3: copy into a flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrInconsistentRows, or the validator's sentinel
//     wrapped with the first offending coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewGrid[T any](data [][]T, validate CellValidator[T]) (*Grid[T], error) {
	rows, cols, err := validateData(data)
	if err != nil {
		return nil, matrixErrorf(ctxNewGrid, err)
	}

	g := &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols), validate: validate}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if validate != nil {
				if err = validate(data[i][j]); err != nil {
					return nil, cellErrorf(ctxNewGrid, i, j, err)
				}
			}
			g.data[i*cols+j] = data[i][j]
		}
	}

	return g, nil
}

// FillGrid returns a rows×cols grid with every cell equal to v.
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1.
//   - The validator's sentinel when v itself is rejected.
func FillGrid[T any](rows, cols int, v T, validate CellValidator[T]) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, matrixErrorf(ctxFillGrid, ErrInvalidDimensions)
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return nil, matrixErrorf(ctxFillGrid, err)
		}
	}

	g := newGrid(rows, cols, validate)
	for idx := range g.data {
		g.data[idx] = v
	}

	return g, nil
}

// newGrid allocates a zero-valued grid without validation. Callers guarantee
// rows, cols >= 1 and take responsibility for the contents.
func newGrid[T any](rows, cols int, validate CellValidator[T]) *Grid[T] {
	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols), validate: validate}
}

// validateData checks the structural invariants of raw 2-D input and returns
// its shape.
func validateData[T any](data [][]T) (rows, cols int, err error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return 0, 0, ErrInvalidDimensions
	}
	rows, cols = len(data), len(data[0])
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return 0, 0, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(data[i]), cols, ErrInconsistentRows)
		}
	}

	return rows, cols, nil
}

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the column count.
func (g *Grid[T]) Cols() int { return g.c }

// Size returns the number of cells, Rows()*Cols().
func (g *Grid[T]) Size() int { return g.r * g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[T]) Shape() (rows, cols int) { return g.r, g.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (g *Grid[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	return row*g.c + col, nil
}

// At returns the cell at (row, col).
// Errors: ErrOutOfRange for indices outside [0,Rows())×[0,Cols()).
func (g *Grid[T]) At(row, col int) (T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, cellErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col) after running the cell validator.
// Errors: ErrOutOfRange for bad indices; the validator's sentinel otherwise.
// The cell is left untouched on failure.
func (g *Grid[T]) Set(row, col int, v T) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	if g.validate != nil {
		if err = g.validate(v); err != nil {
			return cellErrorf(ctxSet, row, col, err)
		}
	}
	g.data[off] = v

	return nil
}

// IsSet reports whether (row, col) addresses an existing cell. Never fails.
func (g *Grid[T]) IsSet(row, col int) bool {
	_, err := g.indexOf(row, col)

	return err == nil
}

// Unset always fails with ErrUnsupported: a grid's shape is fixed and a cell
// cannot be removed.
func (g *Grid[T]) Unset(row, col int) error {
	return cellErrorf(ctxUnset, row, col, ErrUnsupported)
}

// ToSlice returns the cells as a fresh [][]T (rows of columns).
func (g *Grid[T]) ToSlice() [][]T {
	out := make([][]T, g.r)
	for i := 0; i < g.r; i++ {
		row := make([]T, g.c)
		copy(row, g.data[i*g.c:(i+1)*g.c])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy sharing only the validator.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{r: g.r, c: g.c, data: cp, validate: g.validate}
}

// Transpose returns a new c×r grid with out[j][i] = g[i][j].
// Complexity: O(r*c).
func (g *Grid[T]) Transpose() *Grid[T] {
	res := newGrid(g.c, g.r, g.validate)
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			res.data[j*g.r+i] = g.data[base+j]
		}
	}

	return res
}

// TransposeInPlace replaces the receiver with its transpose. A non-square
// buffer cannot be permuted into a different shape in place, so the
// transposed copy is computed first and its storage adopted.
func (g *Grid[T]) TransposeInPlace() {
	g.adopt(g.Transpose())
}

// adopt takes over src's storage and dimensions.
func (g *Grid[T]) adopt(src *Grid[T]) {
	g.r, g.c, g.data = src.r, src.c, src.data
}

// Do visits every cell in row-major order; it stops when f returns false.
func (g *Grid[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			if !f(i, j, g.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed, comma-separated line per row using %v.
// Intended for diagnostics, not hot paths.
func (g *Grid[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.c
		for j = 0; j < g.c; j++ {
			fmt.Fprintf(&b, "%v", g.data[base+j])
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
