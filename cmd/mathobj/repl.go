// SPDX-License-Identifier: MIT
package main

import (
	"github.com/katalvlaran/mathobjects/internal/repl"
	"github.com/katalvlaran/mathobjects/rational"
	"github.com/spf13/cobra"
)

func newReplCmd(g *globalFlags) *cobra.Command {
	var precision float64

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive rational calculator (reads stdin when it is not a terminal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := repl.New(cmd.OutOrStdout(), g.log, precision)
			return s.Run(cmd.InOrStdin())
		},
	}
	cmd.Flags().Float64Var(&precision, "precision", rational.DefaultPrecision, "Precision of the float command")

	return cmd
}
