// SPDX-License-Identifier: MIT
package calc_test

import (
	"testing"

	"github.com/katalvlaran/mathobjects/internal/calc"
	"github.com/katalvlaran/mathobjects/rational"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"5", "5"},
		{"2 16/8", "4"},
		{"1/2 + 1/3", "5/6"},
		{"-1/2 + 1/3", "-1/6"},
		{"5 6/7 - -3 3/8", "9 13/56"},
		{"1 1/2 * -2/3", "-1"},
		{"5 6/7 / -3 3/8", "-1 139/189"},
		{"neg 3/4", "-3/4"},
		{"abs -2 1/3", "2 1/3"},
		{"recip -2 1/3", "-3/7"},
		{"  7/3   *   3  ", "7"},
	}
	env := calc.NewEnv()
	for _, tc := range cases {
		got, err := env.Eval(tc.expr)
		require.NoError(t, err, tc.expr)
		require.Equal(t, tc.want, got.String(), tc.expr)
	}
}

func TestEvalVariables(t *testing.T) {
	env := calc.NewEnv()
	ans, ok := env.Get(calc.Ans)
	require.True(t, ok)
	require.True(t, ans.IsZero())

	require.NoError(t, env.Set("x", rational.MustParse("1/4")))
	require.NoError(t, env.Set(calc.Ans, rational.FromInt(3)))

	got, err := env.Eval("ans * x")
	require.NoError(t, err)
	require.Equal(t, "3/4", got.String())

	got, err = env.Eval("recip x")
	require.NoError(t, err)
	require.Equal(t, "4", got.String())

	_, err = env.Eval("y + 1")
	require.ErrorIs(t, err, calc.ErrUnknownVariable)

	require.ErrorIs(t, env.Set("1x", rational.Zero), calc.ErrExpression)
	require.ErrorIs(t, env.Set("", rational.Zero), calc.ErrExpression)
}

func TestEvalErrors(t *testing.T) {
	env := calc.NewEnv()
	cases := []struct {
		expr string
		want error
	}{
		{"", calc.ErrExpression},
		{"   ", calc.ErrExpression},
		{"1 +", calc.ErrExpression},
		{"* 2", calc.ErrExpression},
		{"1 + 2 + 3", calc.ErrExpression},
		{"neg", calc.ErrExpression},
		{"1 / 0", rational.ErrDivisionByZero},
		{"recip 0", rational.ErrDivisionByZero},
		{"1/0 + 1", rational.ErrZeroDenominator},
		{"1 2 3 + 1", rational.ErrSyntax},
		{"1.5 + 1", rational.ErrSyntax},
		{"neg -9223372036854775808", rational.ErrOverflow},
		{"abs -9223372036854775808", rational.ErrOverflow},
		{"9223372036854775807 + 1", rational.ErrOverflow},
	}
	for _, tc := range cases {
		_, err := env.Eval(tc.expr)
		require.ErrorIs(t, err, tc.want, "%q", tc.expr)
	}
}
