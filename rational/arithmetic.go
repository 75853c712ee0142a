// SPDX-License-Identifier: MIT

// Package rational - arithmetic.
//
// Every operator converts its operands to improper fractions
// (whole*den + num, den), combines them, and rebuilds a canonical value
// through New(0, num, den). Intermediate products are overflow-checked:
// a result that cannot be represented in int64 fields yields ErrOverflow
// instead of a silently wrapped value.

package rational

import (
	"math"

	"github.com/katalvlaran/mathobjects/mathutil"
)

// operands returns both values as improper fractions.
func operands(op string, a, b Rational) (an, ad, bn, bd int64, err error) {
	if an, ad, err = a.improper(); err != nil {
		return 0, 0, 0, 0, rationalErrorf(op, err)
	}
	if bn, bd, err = b.improper(); err != nil {
		return 0, 0, 0, 0, rationalErrorf(op, err)
	}

	return an, ad, bn, bd, nil
}

// fromFraction builds New(0, num, den) with the operation tag on failure.
func fromFraction(op string, num, den int64) (Rational, error) {
	r, err := New(0, num, den)
	if err != nil {
		return Rational{}, rationalErrorf(op, err)
	}

	return r, nil
}

// Add returns r + other.
// Implementation:
//   - Stage 1: improper fractions a/b, c/d.
//   - Stage 2: (a*d + c*b) / (b*d) with overflow checks.
//   - Stage 3: rebuild canonical value.
//
// Errors:
//   - ErrOverflow when an intermediate value leaves int64.
func (r Rational) Add(other Rational) (Rational, error) {
	return r.addSigned(opAdd, other, 1)
}

// Subtract returns r - other.
// Errors:
//   - ErrOverflow when an intermediate value leaves int64.
func (r Rational) Subtract(other Rational) (Rational, error) {
	return r.addSigned(opSubtract, other, -1)
}

// addSigned computes r + sign*other; sign is +1 or -1.
func (r Rational) addSigned(op string, other Rational, sign int64) (Rational, error) {
	an, ad, bn, bd, err := operands(op, r, other)
	if err != nil {
		return Rational{}, err
	}
	// -math.MinInt64 has no int64 form either.
	bn, ok0 := mathutil.MulChecked(bn, sign)
	// Scale by the lcm of the denominators to keep intermediates small.
	g := mathutil.GCD(ad, bd)
	left, ok1 := mathutil.MulChecked(an, bd/g)
	right, ok2 := mathutil.MulChecked(bn, ad/g)
	den, ok3 := mathutil.MulChecked(ad/g, bd)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return Rational{}, rationalErrorf(op, ErrOverflow)
	}
	num, ok := mathutil.AddChecked(left, right)
	if !ok {
		return Rational{}, rationalErrorf(op, ErrOverflow)
	}

	return fromFraction(op, num, den)
}

// Multiply returns r * other.
// Cross-cancellation (gcd of each numerator with the opposite denominator)
// runs before the products to delay overflow.
func (r Rational) Multiply(other Rational) (Rational, error) {
	an, ad, bn, bd, err := operands(opMultiply, r, other)
	if err != nil {
		return Rational{}, err
	}

	return mulFractions(opMultiply, an, ad, bn, bd)
}

// Divide returns r / other.
// Errors:
//   - ErrDivisionByZero when other == 0.
//   - ErrOverflow when an intermediate value leaves int64.
func (r Rational) Divide(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, rationalErrorf(opDivide, ErrDivisionByZero)
	}
	an, ad, bn, bd, err := operands(opDivide, r, other)
	if err != nil {
		return Rational{}, err
	}

	// a/b ÷ c/d == a/b * d/c; New fixes the sign of a negative denominator.
	return mulFractions(opDivide, an, ad, bd, bn)
}

// mulFractions returns (an/ad) * (bn/bd) in canonical form.
func mulFractions(op string, an, ad, bn, bd int64) (Rational, error) {
	if g := mathutil.GCD(an, bd); g > 1 {
		an, bd = an/g, bd/g
	}
	if g := mathutil.GCD(bn, ad); g > 1 {
		bn, ad = bn/g, ad/g
	}
	num, ok1 := mathutil.MulChecked(an, bn)
	den, ok2 := mathutil.MulChecked(ad, bd)
	if !ok1 || !ok2 {
		return Rational{}, rationalErrorf(op, ErrOverflow)
	}

	return fromFraction(op, num, den)
}

// Reciprocal returns 1/r.
// Errors:
//   - ErrDivisionByZero when r == 0.
func (r Rational) Reciprocal() (Rational, error) {
	if r.IsZero() {
		return Rational{}, rationalErrorf(opReciprocal, ErrDivisionByZero)
	}
	n, d, err := r.improper()
	if err != nil {
		return Rational{}, rationalErrorf(opReciprocal, err)
	}

	return fromFraction(opReciprocal, d, n)
}

// Negate returns -r.
// Errors:
//   - ErrOverflow when the whole part is math.MinInt64.
func (r Rational) Negate() (Rational, error) {
	return r.negate(opNegate)
}

// Abs returns |r|.
// Errors:
//   - ErrOverflow when the whole part is math.MinInt64.
func (r Rational) Abs() (Rational, error) {
	if r.IsNegative() {
		return r.negate(opAbs)
	}
	w, n, d := r.canonical()

	return Rational{whole: w, num: n, dm1: d - 1}, nil
}

// negate flips both signed fields; |n| < d <= MaxInt64 keeps -n exact.
func (r Rational) negate(op string) (Rational, error) {
	w, n, d := r.canonical()
	if w == math.MinInt64 {
		return Rational{}, rationalErrorf(op, ErrOverflow)
	}

	return Rational{whole: -w, num: -n, dm1: d - 1}, nil
}
