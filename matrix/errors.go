// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON KINDS
// -------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// Specific input errors wrap ErrInvalidArgument, so callers may match either
// the specific sentinel or the whole kind:
//
//	errors.Is(err, ErrInconsistentRows) // specific
//	errors.Is(err, ErrInvalidArgument)  // kind
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/dimensions -> row consistency -> cell policy (NaN/Inf).

var (
	// ErrInvalidArgument is the kind of every malformed-input error.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Add/Subtract with different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupported marks an intentionally unsupported operation, such as
	// removing a cell from a fixed-shape grid.
	ErrUnsupported = errors.New("matrix: operation not supported")
)

var (
	// ErrInvalidDimensions indicates non-positive requested dimensions or
	// empty input data.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrInconsistentRows indicates that input rows differ in length.
	ErrInconsistentRows = fmt.Errorf("%w: inconsistent row length", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy
	// requires finite cells (ingestion, Set, arithmetic results).
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with a method tag and the offending coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}
