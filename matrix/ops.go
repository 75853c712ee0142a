// SPDX-License-Identifier: MIT

// Package matrix - pure arithmetic on *Dense.
//
// Every operation here returns a new matrix and leaves its operands intact.
// Results inherit the receiver's configuration; when the receiver validates
// NaN/Inf, a result that overflowed to ±Inf (or produced NaN) is rejected
// with ErrNaNInf and the coordinates of the first offending cell.
//
// Loop orders are fixed, so results are bit-for-bit reproducible.

package matrix

const (
	ctxAdd              = "Dense.Add"
	ctxSubtract         = "Dense.Subtract"
	ctxMultiply         = "Dense.Multiply"
	ctxMultiplyByScalar = "Dense.MultiplyByScalar"
)

// checkOperand rejects a nil argument.
func checkOperand(other *Dense) error {
	if other == nil || other.g == nil {
		return ErrNilMatrix
	}

	return nil
}

// sameShape reports ErrDimensionMismatch when shapes differ.
func (m *Dense) sameShape(other *Dense) error {
	if m.g.r != other.g.r || m.g.c != other.g.c {
		return ErrDimensionMismatch
	}

	return nil
}

// checkResult applies the receiver's finite policy to a computed grid.
func (m *Dense) checkResult(tag string, g *Grid[float64]) error {
	if !m.opts.validateNaNInf {
		return nil
	}
	var err error
	g.Do(func(i, j int, v float64) bool {
		if finiteCell(v) != nil {
			err = cellErrorf(tag, i, j, ErrNaNInf)
			return false
		}
		return true
	})

	return err
}

// Add returns m + other.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (overflow).
// Complexity: O(r*c).
func (m *Dense) Add(other *Dense) (*Dense, error) {
	g, err := m.elementwise(ctxAdd, other, func(a, b float64) float64 { return a + b })
	if err != nil {
		return nil, err
	}

	return m.derive(g), nil
}

// Subtract returns m - other.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (overflow).
func (m *Dense) Subtract(other *Dense) (*Dense, error) {
	g, err := m.elementwise(ctxSubtract, other, func(a, b float64) float64 { return a - b })
	if err != nil {
		return nil, err
	}

	return m.derive(g), nil
}

// elementwise computes f(m[i][j], other[i][j]) over the flat buffers.
func (m *Dense) elementwise(tag string, other *Dense, f func(a, b float64) float64) (*Grid[float64], error) {
	if err := checkOperand(other); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := m.sameShape(other); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := newGrid(m.g.r, m.g.c, m.g.validate)
	for idx := range res.data {
		res.data[idx] = f(m.g.data[idx], other.g.data[idx])
	}
	if err := m.checkResult(tag, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Multiply returns the product m × other: r[i][j] = Σ_k m[i][k]·other[k][j].
// MAIN DESCRIPTION:
//   - Triple loop in fixed i→k→j order over the flat buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when m.Cols() != other.Rows(),
//     ErrNaNInf when the product overflows under the policy.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Multiply(other *Dense) (*Dense, error) {
	g, err := m.product(ctxMultiply, other)
	if err != nil {
		return nil, err
	}

	return m.derive(g), nil
}

// product validates operands and computes the full product grid.
func (m *Dense) product(tag string, other *Dense) (*Grid[float64], error) {
	if err := checkOperand(other); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if m.g.c != other.g.r {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}

	res := newGrid(m.g.r, other.g.c, m.g.validate)
	mulRows(res, m.g, other.g, 0, m.g.r)
	if err := m.checkResult(tag, res); err != nil {
		return nil, err
	}

	return res, nil
}

// mulRows accumulates rows [lo, hi) of a×b into res. Rows are independent,
// so disjoint ranges may run concurrently.
func mulRows(res, a, b *Grid[float64], lo, hi int) {
	var (
		i, j, k    int
		av         float64
		offA, offR int
		offB       int
	)
	aCols, bCols := a.c, b.c
	for i = lo; i < hi; i++ {
		offA = i * aCols
		offR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[offA+k]
			offB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[offR+j] += av * b.data[offB+j]
			}
		}
	}
}

// MultiplyByScalar returns s·m.
// Errors: ErrNaNInf when s or a product is non-finite under the policy.
func (m *Dense) MultiplyByScalar(s float64) (*Dense, error) {
	g, err := m.scaled(ctxMultiplyByScalar, s)
	if err != nil {
		return nil, err
	}

	return m.derive(g), nil
}

// scaled computes the scaled grid.
func (m *Dense) scaled(tag string, s float64) (*Grid[float64], error) {
	if m.opts.validateNaNInf && finiteCell(s) != nil {
		return nil, matrixErrorf(tag, ErrNaNInf)
	}
	res := newGrid(m.g.r, m.g.c, m.g.validate)
	for idx, v := range m.g.data {
		res.data[idx] = v * s
	}
	if err := m.checkResult(tag, res); err != nil {
		return nil, err
	}

	return res, nil
}

// ChangeSign returns -m. Never fails: negation preserves finiteness.
func (m *Dense) ChangeSign() *Dense {
	res := m.g.Clone()
	for idx := range res.data {
		res.data[idx] = -res.data[idx]
	}

	return m.derive(res)
}

// Transpose returns the cols×rows matrix with t[j][i] = m[i][j].
func (m *Dense) Transpose() *Dense {
	return m.derive(m.g.Transpose())
}
