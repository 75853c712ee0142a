// SPDX-License-Identifier: MIT

// Package rational - construction, normalization and queries.
//
// Purpose:
//   - Build canonical values (New) or keep a triple verbatim (NewRaw).
//   - Answer sign, integrality, equality and ordering questions on the
//     canonical form, whichever way the value was built.
//
// AI-Hints:
//   - Use NewRaw only when a non-canonical triple must be preserved verbatim.
//   - The zero value of Rational is a valid 0 (denominator 1).

package rational

import (
	"math"
	"math/big"

	"github.com/katalvlaran/mathobjects/mathutil"
)

// operation tags used in error wrappers
const (
	opNew        = "New"
	opNewRaw     = "NewRaw"
	opFromString = "FromString"
	opFromFloat  = "FromFloat"
	opAdd        = "Add"
	opSubtract   = "Subtract"
	opMultiply   = "Multiply"
	opDivide     = "Divide"
	opReciprocal = "Reciprocal"
	opNegate     = "Negate"
	opAbs        = "Abs"
)

// Rational is an immutable mixed number whole + num/den.
//   - dm1 stores denominator-1, so the zero value reads as 0/1.
//   - Values may be copied and compared freely; canonical values with equal
//     fields represent equal numbers.
type Rational struct {
	whole int64 // integer part
	num   int64 // numerator; carries the sign when whole == 0
	dm1   int64 // denominator biased by -1
}

// Zero is the canonical 0.
var Zero = Rational{}

// New builds the canonical Rational for whole + numerator/denominator.
// MAIN DESCRIPTION:
//   - Validate the denominator and normalize the triple into canonical form.
//
// Implementation:
//   - Stage 1: reject denominator == 0.
//   - Stage 2: normalize (sign of denominator, whole-part extraction,
//     sign reconciliation, gcd reduction, unit denominator for integers).
//
// Errors:
//   - ErrZeroDenominator when denominator == 0.
//   - ErrOverflow when a canonical field does not fit into int64,
//     e.g. New(math.MaxInt64, 3, 2) or New(0, 1, math.MinInt64).
//
// Complexity:
//   - Time O(log denominator), Space O(1).
func New(whole, numerator, denominator int64) (Rational, error) {
	if denominator == 0 {
		return Rational{}, rationalErrorf(opNew, ErrZeroDenominator)
	}
	w, n, d, err := normalize(whole, numerator, denominator)
	if err != nil {
		return Rational{}, rationalErrorf(opNew, err)
	}

	return Rational{whole: w, num: n, dm1: d - 1}, nil
}

// NewRaw stores the triple verbatim without normalization.
// The denominator must still be non-zero, and the triple must have a
// canonical form (ErrOverflow otherwise). Arithmetic on a raw value returns
// canonical results; String and IsEqual read its canonical form.
func NewRaw(whole, numerator, denominator int64) (Rational, error) {
	if denominator == 0 {
		return Rational{}, rationalErrorf(opNewRaw, ErrZeroDenominator)
	}
	if _, _, _, err := normalize(whole, numerator, denominator); err != nil {
		return Rational{}, rationalErrorf(opNewRaw, err)
	}

	// dm1 wraps for math.MinInt64; Denominator adds the 1 back.
	return Rational{whole: whole, num: numerator, dm1: denominator - 1}, nil
}

// MustNew is New for literals known to be valid; it panics on a zero denominator.
func MustNew(whole, numerator, denominator int64) Rational {
	r, err := New(whole, numerator, denominator)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n as a Rational; equivalent to New(n, 0, 1).
func FromInt(n int64) Rational {
	return Rational{whole: n}
}

// normalize brings (whole, num, den) into canonical form. den must be non-zero.
// The fraction is split on uint64 magnitudes, so math.MinInt64 parts are
// exact; ErrOverflow reports a value whose canonical fields leave int64.
func normalize(whole, num, den int64) (int64, int64, int64, error) {
	// Stage 1: sign of num/den and magnitudes.
	neg := (num < 0) != (den < 0)
	un, ud := mathutil.AbsUint(num), mathutil.AbsUint(den)

	// Stage 2: integral part and reduced remainder; gcd(0, d) == d leaves
	// integers with denominator 1.
	q, rem := un/ud, un%ud
	if g := mathutil.GCDUint(rem, ud); g > 1 {
		rem, ud = rem/g, ud/g
	}
	if ud > math.MaxInt64 {
		return 0, 0, 0, ErrOverflow
	}

	// Stage 3: move the integral part into whole. q may be 2^63, as in
	// New(-1, math.MinInt64, -1) == MaxInt64, so it is added in two halves.
	h := q / 2
	for _, part := range [...]uint64{h, q - h} {
		sp, _ := mathutil.FromMagnitude(part, neg) // part <= 2^62
		var ok bool
		if whole, ok = mathutil.AddChecked(whole, sp); !ok {
			return 0, 0, 0, ErrOverflow
		}
	}
	n, d := int64(rem), int64(ud) // rem < ud <= MaxInt64
	if neg {
		n = -n
	}

	// Stage 4: whole and n must agree in sign; both steps move toward zero.
	switch {
	case whole > 0 && n < 0:
		whole--
		n += d
	case whole < 0 && n > 0:
		whole++
		n -= d
	}

	return whole, n, d, nil
}

// Whole returns the integer part as stored.
func (r Rational) Whole() int64 { return r.whole }

// Numerator returns the numerator as stored.
func (r Rational) Numerator() int64 { return r.num }

// Denominator returns the denominator as stored.
func (r Rational) Denominator() int64 { return r.dm1 + 1 }

// canonical returns the normalized fields; a no-op for values built by New.
// New and NewRaw reject every triple without a canonical form, so the
// error is always nil here.
func (r Rational) canonical() (whole, num, den int64) {
	whole, num, den, _ = normalize(r.whole, r.num, r.Denominator())

	return whole, num, den
}

// improper returns the value as a single fraction (whole*den + num, den)
// with den > 0, or ErrOverflow when the numerator does not fit into int64.
func (r Rational) improper() (int64, int64, error) {
	w, n, d := r.canonical()
	p, ok := mathutil.MulChecked(w, d)
	if !ok {
		return 0, 0, ErrOverflow
	}
	p, ok = mathutil.AddChecked(p, n)
	if !ok {
		return 0, 0, ErrOverflow
	}

	return p, d, nil
}

// Float64 returns whole + numerator/denominator as a float64.
func (r Rational) Float64() float64 {
	return float64(r.whole) + float64(r.num)/float64(r.Denominator())
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	w, n, _ := r.canonical()
	switch {
	case w < 0 || n < 0:
		return -1
	case w > 0 || n > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsNegative reports whether r < 0.
func (r Rational) IsNegative() bool { return r.Sign() < 0 }

// IsPositive reports whether r > 0.
func (r Rational) IsPositive() bool { return r.Sign() > 0 }

// IsInteger reports whether r has no fractional part.
func (r Rational) IsInteger() bool {
	_, n, _ := r.canonical()

	return n == 0
}

// IsEqual reports whether r and other denote the same value.
// Both sides are compared in canonical form, so raw values compare by value too.
func (r Rational) IsEqual(other Rational) bool {
	aw, an, ad := r.canonical()
	bw, bn, bd := other.canonical()

	return aw == bw && an == bn && ad == bd
}

// Cmp compares r and other and returns -1, 0 or +1.
// Canonical wholes order the values unless equal; then the fractions are
// compared by cross-multiplication, falling back to math/big on overflow.
func (r Rational) Cmp(other Rational) int {
	aw, an, ad := r.canonical()
	bw, bn, bd := other.canonical()
	switch {
	case aw < bw:
		return -1
	case aw > bw:
		return 1
	}

	left, okL := mathutil.MulChecked(an, bd)
	right, okR := mathutil.MulChecked(bn, ad)
	if !okL || !okR {
		l := new(big.Int).Mul(big.NewInt(an), big.NewInt(bd))
		return l.Cmp(new(big.Int).Mul(big.NewInt(bn), big.NewInt(ad)))
	}
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}
