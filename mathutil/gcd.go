// SPDX-License-Identifier: MIT

// Package mathutil holds the small integer helpers shared by the numeric
// packages. Everything here is pure, allocation-free and deterministic.
package mathutil

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// MAIN DESCRIPTION:
//   - Defined for every pair of integers, including negatives and zero.
//
// Behavior highlights:
//   - The result is never negative: GCD(-4, 6) == 2.
//   - GCD(a, 0) == |a| and GCD(0, 0) == 0; callers dividing by the result
//     must guard the zero case themselves.
//   - The one exception is a result of 2^63 (GCD(math.MinInt64, 0)), which
//     has no int64 form and comes back as math.MinInt64; use GCDUint there.
//
// Complexity:
//   - Time O(log(min(|a|,|b|))), Space O(1).
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return Abs(a)
}

// GCDUint is GCD on magnitudes. GCDUint(0, 0) == 0.
func GCDUint(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Abs returns |x|. Abs(math.MinInt64) overflows back to math.MinInt64.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
