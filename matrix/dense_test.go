// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathobjects/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that constructors reject non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Fill(0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewFromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFromRowsValidation covers ragged rows and the finite policy.
func TestNewFromRowsValidation(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInconsistentRows)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewFromRows([][]float64{{1}, {math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, m.ValidatesNaNInf())

	_, err = matrix.Fill(2, 2, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowsCols verifies shape accessors.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Size())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	requireAll(t, m, 0)
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	require.True(t, m.IsSet(1, 1))
	require.False(t, m.IsSet(1, 2))
	require.ErrorIs(t, m.Unset(0, 0), matrix.ErrUnsupported)
}

// TestSetPolicy checks that Set honors the numeric policy.
func TestSetPolicy(t *testing.T) {
	m := mustFill(t, 2, 2, 1)
	require.NoError(t, m.Set(1, 0, 7.89))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	v, _ = m.At(0, 0)
	require.Equal(t, 1.0, v)

	loose := mustFill(t, 2, 2, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestIdentity checks the diagonal pattern.
func TestIdentity(t *testing.T) {
	id := mustIdentity(t, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}
}

// TestCloneIndependence ensures Clone returns a deep copy that keeps the configuration.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 2}}, matrix.WithEpsilon(1e-3))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	cv, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cv)

	cp := m.Copy()
	require.Equal(t, 1e-3, cp.Epsilon())
	require.ErrorIs(t, cp.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestToSliceAndString checks the export forms.
func TestToSliceAndString(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	rows := m.ToSlice()
	require.Equal(t, [][]float64{{1, 2.5}, {-3, 0}}, rows)

	rows[0][0] = 99
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v, "ToSlice must copy")

	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
