// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mathobjects/internal/logging"
	"github.com/katalvlaran/mathobjects/matrix"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent settings shared by every subcommand.
type globalFlags struct {
	verbose        bool
	epsilon        float64
	allowNonFinite bool

	log *slog.Logger
}

// matrixOptions translates the flags into matrix options.
func (g *globalFlags) matrixOptions() ([]matrix.Option, error) {
	if math.IsNaN(g.epsilon) || math.IsInf(g.epsilon, 0) || g.epsilon < 0 {
		return nil, fmt.Errorf("--epsilon must be a finite non-negative number, got %v", g.epsilon)
	}
	opts := []matrix.Option{matrix.WithEpsilon(g.epsilon)}
	if g.allowNonFinite {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}

	return opts, nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{log: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "mathobj",
		Short: "mathobj computes with exact rationals and dense matrices",
		Long: `mathobj evaluates rational expressions in mixed-number notation ("-2 1/3")
and runs matrix operations on YAML documents of the form {a, b, scalar}.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.log = logging.NewWriter(cmd.ErrOrStderr(), logging.Level(g.verbose))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().Float64Var(&g.epsilon, "epsilon", matrix.DefaultEpsilon, "Tolerance for matrix equality")
	rootCmd.PersistentFlags().BoolVar(&g.allowNonFinite, "allow-nonfinite", false, "Accept NaN and Inf matrix cells")

	rootCmd.AddCommand(
		newRationalCmd(g),
		newMatrixCmd(g),
		newReplCmd(g),
		newVersionCmd(),
	)

	return rootCmd
}
