// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mathobjects/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths of the free functions.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// mustFill builds an r×c *Dense filled with v or fails the test.
func mustFill(tb testing.TB, r, c int, v float64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Fill(r, c, v, opts...)
	require.NoError(tb, err)

	return m
}

// mustIdentity builds I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Identity(n)
	require.NoError(tb, err)

	return m
}

// randomDense fills an r×c matrix with values in [-10, 10) from a fixed seed.
func randomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return mustRows(tb, rows)
}

// requireAll asserts every cell of m equals want.
func requireAll(t *testing.T, m matrix.Matrix, want float64) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, v, "cell (%d,%d)", i, j)
		}
	}
}
