// SPDX-License-Identifier: MIT

// Package matrix - universal operations on any Matrix implementation:
// element-wise addition and subtraction, multiplication, transpose and
// scalar scaling. All functions validate fail-fast and return wrapped
// sentinels on nil operands or dimension mismatches.
//
// When every operand is a *Dense the call delegates to the Dense methods
// (flat-slice loops); otherwise a generic loop over At/Set runs and the
// result is a *Dense with the default configuration.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// Add returns a new Matrix containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return asMatrix(da.Add(db))
		}
	}

	return zipWith(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return asMatrix(da.Subtract(db))
		}
	}

	return zipWith(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// asMatrix converts a Dense result without leaking a typed nil into the interface.
func asMatrix(d *Dense, err error) (Matrix, error) {
	if err != nil {
		return nil, err
	}

	return d, nil
}

// zipWith is the generic element-wise kernel behind Add and Sub.
func zipWith(tag string, a, b Matrix, f func(x, y float64) float64) (Matrix, error) {
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			if err = res.Set(i, j, f(av, bv)); err != nil {
				return nil, matrixErrorf(tag, err)
			}
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Execute): Dense fast-path, or an i-j-k loop over At.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return asMatrix(da.Multiply(db))
		}
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new Matrix where rows and columns of m are swapped.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.Transpose(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new Matrix where each element of m is multiplied by alpha.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if dm, ok := m.(*Dense); ok {
		return asMatrix(dm.MultiplyByScalar(alpha))
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}
