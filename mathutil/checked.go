// SPDX-License-Identifier: MIT

package mathutil

import "math"

// MulChecked returns a*b and false when the product overflows int64.
// Complexity: O(1).
func MulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

// AddChecked returns a+b and false when the sum overflows int64.
// Complexity: O(1).
func AddChecked(a, b int64) (int64, bool) {
	s := a + b
	// Overflow happens only when both operands share a sign the sum lacks.
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// AbsUint returns |x| as uint64; exact for math.MinInt64.
func AbsUint(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

// FromMagnitude returns the int64 with magnitude u and the given sign, and
// false when it does not fit. A negative magnitude of exactly 2^63 yields
// math.MinInt64.
func FromMagnitude(u uint64, neg bool) (int64, bool) {
	const minMag = uint64(1) << 63
	switch {
	case neg && u == minMag:
		return math.MinInt64, true
	case u > math.MaxInt64:
		return 0, false
	case neg:
		return -int64(u), true
	default:
		return int64(u), true
	}
}
