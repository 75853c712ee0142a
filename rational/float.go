// SPDX-License-Identifier: MIT

package rational

import (
	"math"
)

// DefaultPrecision is a reasonable FromFloat precision for float64 input.
const DefaultPrecision = 1e-6

const (
	// maxConvergents caps the continued-fraction expansion; float64 input
	// never needs more than ~40 terms before the remainder is exhausted.
	maxConvergents = 64

	// maxExactDenominator bounds convergent denominators to the range where
	// float64 still represents every integer exactly.
	maxExactDenominator = 1 << 53

	// int64Bound is 2^63 as a float; |x| must stay below it.
	int64Bound = 0x1p63
)

// FromFloat returns the rational with the smallest denominator d such that
// the fractional part f of x satisfies |f*d - round(f*d)| <= precision.
// MAIN DESCRIPTION:
//   - Split x into a truncated whole part and |fractional part|.
//   - Walk the continued-fraction convergents h/k of the fractional part and
//     stop at the first one within precision; the smallest qualifying
//     denominator is always a convergent denominator.
//
// Behavior highlights:
//   - Deterministic for a given (x, precision).
//   - FromFloat(15.3333333, 1e-3) == 15 1/3; FromFloat(-1.1, 1e-3) == -1 1/10.
//
// Errors:
//   - ErrNonFinite for NaN/±Inf x.
//   - ErrInvalidPrecision for precision <= 0, NaN or +Inf.
//   - ErrOverflow when |x| >= 2^63.
//
// Complexity:
//   - Time O(maxConvergents), Space O(1).
func FromFloat(x, precision float64) (Rational, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rational{}, rationalErrorf(opFromFloat, ErrNonFinite)
	}
	if math.IsNaN(precision) || math.IsInf(precision, 0) || precision <= 0 {
		return Rational{}, rationalErrorf(opFromFloat, ErrInvalidPrecision)
	}
	if math.Abs(x) >= int64Bound {
		return Rational{}, rationalErrorf(opFromFloat, ErrOverflow)
	}

	whole := int64(x) // truncates toward zero
	frac := math.Abs(x - float64(whole))
	num, den := approximate(frac, precision)
	if x < 0 {
		num = -num
	}

	r, err := New(whole, num, den)
	if err != nil {
		return Rational{}, rationalErrorf(opFromFloat, err)
	}

	return r, nil
}

// approximate returns the first convergent h/k of f in [0,1) with
// |f*k - h| <= precision. When the expansion ends or the denominator
// would lose float64 exactness, the last convergent is returned.
func approximate(f, precision float64) (int64, int64) {
	// h(-2)=0, h(-1)=1; k(-2)=1, k(-1)=0.
	var (
		hPrev, h int64 = 0, 1
		kPrev, k int64 = 1, 0
		rem            = f
	)
	for i := 0; i < maxConvergents; i++ {
		a := math.Floor(rem)
		if a*float64(k)+float64(kPrev) > maxExactDenominator {
			break
		}
		term := int64(a)
		hPrev, h = h, term*h+hPrev
		kPrev, k = k, term*k+kPrev

		if math.Abs(f*float64(k)-float64(h)) <= precision {
			break
		}
		tail := rem - a
		if tail == 0 {
			break
		}
		rem = 1 / tail
	}

	return h, k
}
