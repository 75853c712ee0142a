// Package rational_test covers construction, normalization and queries.
package rational_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mathobjects/mathutil"
	"github.com/katalvlaran/mathobjects/rational"
	"github.com/stretchr/testify/require"
)

// requireFields asserts the stored (whole, numerator, denominator) triple.
func requireFields(t *testing.T, r rational.Rational, whole, num, den int64) {
	t.Helper()
	require.Equal(t, whole, r.Whole(), "whole of %v", r)
	require.Equal(t, num, r.Numerator(), "numerator of %v", r)
	require.Equal(t, den, r.Denominator(), "denominator of %v", r)
}

// TestNewZeroDenominator rejects a zero denominator in both construction modes.
func TestNewZeroDenominator(t *testing.T) {
	_, err := rational.New(32, 3, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
	require.ErrorIs(t, err, rational.ErrInvalidArgument)

	_, err = rational.New(0, -12, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)

	_, err = rational.NewRaw(1, 1, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)

	require.Panics(t, func() { rational.MustNew(1, 1, 0) })
}

// TestNewNormalization checks the canonical triples produced by New.
func TestNewNormalization(t *testing.T) {
	cases := []struct {
		w, n, d    int64
		ew, en, ed int64
	}{
		{0, 0, 1, 0, 0, 1},
		{0, 0, 2, 0, 0, 1},
		{1, 1, 1, 2, 0, 1},
		{1, 1, 2, 1, 1, 2},
		{1, 2, 4, 1, 1, 2},
		{1, 4, 2, 3, 0, 1},
		{-1, -1, 2, -1, -1, 2},
		{-1, 1, 2, 0, -1, 2},
		{1, 1, -2, 0, 1, 2},
		{5, -3, -4, 5, 3, 4},
		{10, -36, 4, 1, 0, 1},
		{1, 8, 6, 2, 1, 3},
		{-1, 1, -2, -1, -1, 2},
		{0, 0, -5, 0, 0, 1},
		{-6, 8, 2, -2, 0, 1},
		{15, 9, -63, 14, 6, 7},
		{0, -4, 3, -1, -1, 3},
		{-2, -8, 6, -3, -1, 3},
	}
	for _, tc := range cases {
		r, err := rational.New(tc.w, tc.n, tc.d)
		require.NoError(t, err)
		requireFields(t, r, tc.ew, tc.en, tc.ed)
	}
}

// TestNewRawKeepsFields verifies that raw construction stores the triple verbatim
// while value queries still see the canonical value.
func TestNewRawKeepsFields(t *testing.T) {
	r, err := rational.NewRaw(1, 4, 2)
	require.NoError(t, err)
	requireFields(t, r, 1, 4, 2)

	require.Equal(t, "3", r.String())
	require.True(t, r.IsInteger())
	require.True(t, r.IsEqual(rational.FromInt(3)))

	neg, err := rational.NewRaw(-1, 1, 2)
	require.NoError(t, err)
	require.True(t, neg.IsNegative())
	require.Equal(t, "-1/2", neg.String())
}

// TestZeroValue ensures the zero value is a usable 0.
func TestZeroValue(t *testing.T) {
	var r rational.Rational
	requireFields(t, r, 0, 0, 1)
	require.True(t, r.IsZero())
	require.Equal(t, "0", r.String())
	require.True(t, r.IsEqual(rational.Zero))
}

// TestFromInt checks the integer factory.
func TestFromInt(t *testing.T) {
	for _, n := range []int64{0, 1, 14, -6, -1000} {
		requireFields(t, rational.FromInt(n), n, 0, 1)
	}
}

// TestCanonicalInvariants checks the canonical-form invariants on random triples.
func TestCanonicalInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20240607))
	for i := 0; i < 2000; i++ {
		w := rng.Int63n(2001) - 1000
		n := rng.Int63n(20001) - 10000
		d := rng.Int63n(2001) - 1000
		if d == 0 {
			d = 1
		}
		r, err := rational.New(w, n, d)
		require.NoError(t, err)

		num, den := r.Numerator(), r.Denominator()
		require.Positive(t, den)
		require.Less(t, mathutil.Abs(num), den)
		if num == 0 {
			require.Equal(t, int64(1), den)
		} else {
			require.Equal(t, int64(1), mathutil.GCD(num, den))
		}
		require.False(t, r.Whole() > 0 && num < 0, "mixed signs in %d %d/%d", r.Whole(), num, den)
		require.False(t, r.Whole() < 0 && num > 0, "mixed signs in %d %d/%d", r.Whole(), num, den)

		// Value is preserved: w + n/d == whole + num/den, compared exactly.
		require.Equal(t, (w*d+n)*den, (r.Whole()*den+num)*d)
	}
}

// edgeInts are the int64 values where unchecked arithmetic would wrap.
var edgeInts = []int64{math.MinInt64, math.MinInt64 + 1, -2, -1, 0, 1, 2, math.MaxInt64 - 1, math.MaxInt64}

// TestNewAtInt64Edges checks every edge triple against an exact big.Rat
// computation: New either keeps the value in canonical form or reports
// ErrOverflow when a canonical field cannot hold it.
func TestNewAtInt64Edges(t *testing.T) {
	for _, w := range edgeInts {
		for _, n := range edgeInts {
			for _, d := range edgeInts {
				if d == 0 {
					continue
				}
				want := new(big.Rat).Add(new(big.Rat).SetInt64(w), big.NewRat(n, d))
				whole := new(big.Int).Quo(want.Num(), want.Denom())
				fits := whole.IsInt64() && want.Denom().IsInt64()

				r, err := rational.New(w, n, d)
				if !fits {
					require.ErrorIs(t, err, rational.ErrOverflow, "New(%d, %d, %d)", w, n, d)
					continue
				}
				require.NoError(t, err, "New(%d, %d, %d)", w, n, d)

				num, den := r.Numerator(), r.Denominator()
				require.Positive(t, den)
				require.Less(t, mathutil.Abs(num), den)
				require.False(t, r.Whole() > 0 && num < 0, "mixed signs in %v", r)
				require.False(t, r.Whole() < 0 && num > 0, "mixed signs in %v", r)
				got := new(big.Rat).Add(new(big.Rat).SetInt64(r.Whole()), big.NewRat(num, den))
				require.Zero(t, want.Cmp(got), "New(%d, %d, %d) = %v", w, n, d, r)
			}
		}
	}
}

// TestNewOverflow pins the int64 boundary cases of construction.
func TestNewOverflow(t *testing.T) {
	for _, c := range [][3]int64{
		{math.MaxInt64, 3, 2},
		{math.MinInt64, -3, 2},
		{0, 1, math.MinInt64},
		{0, math.MaxInt64, math.MinInt64},
		{math.MaxInt64, math.MinInt64, -1},
	} {
		_, err := rational.New(c[0], c[1], c[2])
		require.ErrorIs(t, err, rational.ErrOverflow, "New%v", c)
		_, err = rational.NewRaw(c[0], c[1], c[2])
		require.ErrorIs(t, err, rational.ErrOverflow, "NewRaw%v", c)
	}

	cases := []struct {
		w, n, d    int64
		ew, en, ed int64
	}{
		{0, math.MinInt64, 1, math.MinInt64, 0, 1},
		{0, math.MinInt64, math.MinInt64, 1, 0, 1},
		{-1, math.MinInt64, -1, math.MaxInt64, 0, 1},
		{0, 2, math.MinInt64, 0, -1, 1 << 62},
		{math.MaxInt64, -3, 2, math.MaxInt64 - 2, 1, 2},
		{math.MinInt64, 3, 2, math.MinInt64 + 2, -1, 2},
		{math.MaxInt64, 1, 2, math.MaxInt64, 1, 2},
		{math.MinInt64, -1, 2, math.MinInt64, -1, 2},
	}
	for _, tc := range cases {
		r, err := rational.New(tc.w, tc.n, tc.d)
		require.NoError(t, err)
		requireFields(t, r, tc.ew, tc.en, tc.ed)
	}
	require.True(t, rational.MustNew(0, math.MinInt64, 1).IsInteger())

	raw, err := rational.NewRaw(0, 2, math.MinInt64)
	require.NoError(t, err)
	requireFields(t, raw, 0, 2, math.MinInt64)
	require.Equal(t, "-1/4611686018427387904", raw.String())
}

// TestFloat64 compares the float projection with a direct computation.
func TestFloat64(t *testing.T) {
	cases := [][3]int64{{0, 0, 1}, {1, 0, 1}, {15, 15, 1}, {12, 6, 7}, {-10, 5, 10}, {-7, -5, 115}}
	for _, c := range cases {
		r := rational.MustNew(c[0], c[1], c[2])
		want := float64(c[0]) + float64(c[1])/float64(c[2])
		require.InDelta(t, want, r.Float64(), 1e-8)
	}
}

// TestPredicates checks the sign and integrality queries.
func TestPredicates(t *testing.T) {
	cases := []struct {
		in                       string
		zero, neg, pos, integral bool
	}{
		{"0", true, false, false, true},
		{"1", false, false, true, true},
		{"-1", false, true, false, true},
		{"-1/2", false, true, false, false},
		{"1/2", false, false, true, false},
		{"5 3/8", false, false, true, false},
		{"-5 3/8", false, true, false, false},
	}
	for _, tc := range cases {
		r := rational.MustParse(tc.in)
		require.Equal(t, tc.zero, r.IsZero(), "IsZero(%s)", tc.in)
		require.Equal(t, tc.neg, r.IsNegative(), "IsNegative(%s)", tc.in)
		require.Equal(t, tc.pos, r.IsPositive(), "IsPositive(%s)", tc.in)
		require.Equal(t, tc.integral, r.IsInteger(), "IsInteger(%s)", tc.in)
	}
}

// TestIsEqual checks value equality in both directions.
func TestIsEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"0", "0", true},
		{"0", "1/2", false},
		{"1/2", "1/2", true},
		{"-1/2", "1/2", false},
		{"5 1/3", "5 1/3", true},
		{"5 1/3", "5 2/3", false},
		{"5 1/3", "5 1/6", false},
		{"-5 1/3", "5 1/3", false},
		{"5", "5", true},
		{"2 16/8", "4", true},
	}
	for _, tc := range cases {
		a, b := rational.MustParse(tc.a), rational.MustParse(tc.b)
		require.Equal(t, tc.want, a.IsEqual(b), "%s == %s", tc.a, tc.b)
		require.Equal(t, tc.want, b.IsEqual(a), "%s == %s", tc.b, tc.a)
	}
}

// TestCmp orders values across signs, wholes and fractions.
func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1/2", "1/3", 1},
		{"-1/2", "-1/3", -1},
		{"-1 1/2", "-1", -1},
		{"-9/10", "-1", 1},
		{"2 1/3", "2 1/3", 0},
		{"2", "1 99/100", 1},
		{"-3/4", "3/4", -1},
	}
	for _, tc := range cases {
		a, b := rational.MustParse(tc.a), rational.MustParse(tc.b)
		require.Equal(t, tc.want, a.Cmp(b), "cmp(%s, %s)", tc.a, tc.b)
		require.Equal(t, -tc.want, b.Cmp(a), "cmp(%s, %s)", tc.b, tc.a)
	}

	// cross products leave int64 here
	x := rational.MustNew(0, math.MaxInt64-1, math.MaxInt64)
	y := rational.MustNew(0, math.MaxInt64-2, math.MaxInt64-1)
	require.Equal(t, 1, x.Cmp(y))
	require.Equal(t, -1, y.Cmp(x))

	raw, err := rational.NewRaw(1, 2, 4)
	require.NoError(t, err)
	require.Equal(t, 0, raw.Cmp(rational.MustParse("1 1/2")))
}
