// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathobjects/internal/calc"
	"github.com/katalvlaran/mathobjects/rational"
	"github.com/spf13/cobra"
)

func newRationalCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rational",
		Short: "Exact rational arithmetic",
	}
	cmd.AddCommand(newRationalEvalCmd(g), newRationalFromFloatCmd(g))

	return cmd
}

func newRationalEvalCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate A op B, neg A, abs A or recip A",
		Long: `Evaluate a rational expression. Operands use mixed-number notation and
operators (+ - * /) are separate words. Put "--" before expressions that
start with a negative number:

  mathobj rational eval 5 6/7 / -3 3/8
  mathobj rational eval -- -1/2 + 1/3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			r, err := calc.NewEnv().Eval(expr)
			if err != nil {
				return err
			}
			g.log.Debug("evaluated", "expr", expr, "result", r.String())
			fmt.Fprintln(cmd.OutOrStdout(), r)

			return nil
		},
	}
}

func newRationalFromFloatCmd(g *globalFlags) *cobra.Command {
	var precision float64

	cmd := &cobra.Command{
		Use:   "from-float X",
		Short: "Approximate a decimal with the smallest-denominator rational",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("from-float: %w", err)
			}
			r, err := rational.FromFloat(x, precision)
			if err != nil {
				return err
			}
			g.log.Debug("approximated", "x", x, "precision", precision, "result", r.String())
			fmt.Fprintln(cmd.OutOrStdout(), r)

			return nil
		},
	}
	cmd.Flags().Float64Var(&precision, "precision", rational.DefaultPrecision, "Maximum error of the fractional part")

	return cmd
}
