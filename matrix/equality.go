// SPDX-License-Identifier: MIT

// Package matrix - equality predicates.
//
// IsEqual and IsEqualExactly are total: a shape mismatch or a nil operand
// yields false, never an error. NaN is unequal to everything, itself included.

package matrix

import "math"

const ctxAllClose = "AllClose"

// IsEqual reports whether other has the same shape and every pair of cells
// satisfies |a-b| <= eps*max(1, |a|, |b|), with eps = m.Epsilon().
// Identical infinities compare equal.
// Complexity: O(r*c) with early exit.
func (m *Dense) IsEqual(other *Dense) bool {
	if checkOperand(other) != nil || m.sameShape(other) != nil {
		return false
	}
	eps := m.opts.eps
	for idx, a := range m.g.data {
		if !closeEnough(a, other.g.data[idx], eps) {
			return false
		}
	}

	return true
}

// IsEqualExactly reports whether other has the same shape and identical
// cells under ==.
func (m *Dense) IsEqualExactly(other *Dense) bool {
	if checkOperand(other) != nil || m.sameShape(other) != nil {
		return false
	}
	for idx, a := range m.g.data {
		if a != other.g.data[idx] {
			return false
		}
	}

	return true
}

// closeEnough is the hybrid absolute/relative comparison used by IsEqual.
func closeEnough(a, b, eps float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= eps*scale
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if finiteCell(rtol) != nil || finiteCell(atol) != nil {
		return false, matrixErrorf(ctxAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(ctxAllClose, err)
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			if av == bv {
				continue // covers equal infinities
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
