// SPDX-License-Identifier: MIT

// Package matrix - in-place arithmetic on *Dense.
//
// The in-place variants are all-or-nothing: the result is computed in a
// fresh buffer and adopted only on success, so a failing call (mismatched
// shape, overflow under the finite policy) leaves the receiver untouched.
// Multiply and Transpose may change the receiver's shape.

package matrix

const (
	ctxAddInPlace              = "Dense.AddInPlace"
	ctxSubtractInPlace         = "Dense.SubtractInPlace"
	ctxMultiplyInPlace         = "Dense.MultiplyInPlace"
	ctxMultiplyByScalarInPlace = "Dense.MultiplyByScalarInPlace"
)

// AddInPlace sets m = m + other.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func (m *Dense) AddInPlace(other *Dense) error {
	g, err := m.elementwise(ctxAddInPlace, other, func(a, b float64) float64 { return a + b })
	if err != nil {
		return err
	}
	m.g.adopt(g)

	return nil
}

// SubtractInPlace sets m = m - other.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func (m *Dense) SubtractInPlace(other *Dense) error {
	g, err := m.elementwise(ctxSubtractInPlace, other, func(a, b float64) float64 { return a - b })
	if err != nil {
		return err
	}
	m.g.adopt(g)

	return nil
}

// MultiplyInPlace sets m = m × other; m takes the shape m.Rows()×other.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func (m *Dense) MultiplyInPlace(other *Dense) error {
	g, err := m.product(ctxMultiplyInPlace, other)
	if err != nil {
		return err
	}
	m.g.adopt(g)

	return nil
}

// MultiplyByScalarInPlace sets m = s·m.
// Errors: ErrNaNInf under the finite policy.
func (m *Dense) MultiplyByScalarInPlace(s float64) error {
	g, err := m.scaled(ctxMultiplyByScalarInPlace, s)
	if err != nil {
		return err
	}
	m.g.adopt(g)

	return nil
}

// ChangeSignInPlace negates every cell of m.
func (m *Dense) ChangeSignInPlace() {
	for idx := range m.g.data {
		m.g.data[idx] = -m.g.data[idx]
	}
}

// TransposeInPlace replaces m with its transpose.
func (m *Dense) TransposeInPlace() {
	m.g.TransposeInPlace()
}
