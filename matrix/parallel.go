// SPDX-License-Identifier: MIT

// Package matrix - concurrent matrix product.

package matrix

import (
	"golang.org/x/sync/errgroup"
)

const ctxMultiplyParallel = "Dense.MultiplyParallel"

// MultiplyParallel returns m × other, evaluating contiguous blocks of result
// rows concurrently on at most `workers` goroutines. workers <= 0 selects
// the matrix's configured count (WithWorkers, default GOMAXPROCS).
//
// Each cell is accumulated in the same k order as Multiply, so the result is
// bit-for-bit equal to m.Multiply(other).
//
// Errors: as Multiply.
func (m *Dense) MultiplyParallel(other *Dense, workers int) (*Dense, error) {
	if err := checkOperand(other); err != nil {
		return nil, matrixErrorf(ctxMultiplyParallel, err)
	}
	if m.g.c != other.g.r {
		return nil, matrixErrorf(ctxMultiplyParallel, ErrDimensionMismatch)
	}
	if workers <= 0 {
		workers = m.opts.workers
	}
	rows := m.g.r
	if workers > rows {
		workers = rows
	}

	res := newGrid(rows, other.g.c, m.g.validate)
	block := (rows + workers - 1) / workers

	var eg errgroup.Group
	eg.SetLimit(workers)
	for lo := 0; lo < rows; lo += block {
		lo := lo // per-iteration copy; go directive is below 1.22
		hi := min(lo+block, rows)
		eg.Go(func() error {
			mulRows(res, m.g, other.g, lo, hi)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, matrixErrorf(ctxMultiplyParallel, err)
	}
	if err := m.checkResult(ctxMultiplyParallel, res); err != nil {
		return nil, err
	}

	return m.derive(res), nil
}
