// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mathobjects/internal/doc"
	"github.com/katalvlaran/mathobjects/matrix"
	"github.com/spf13/cobra"
)

// matrixOp runs one operation on a loaded document and writes the result.
type matrixOp func(w io.Writer, d *doc.Document, f *matrixFlags) error

type matrixFlags struct {
	workers int
	exact   bool
}

var matrixOps = []struct {
	name  string
	short string
	run   matrixOp
}{
	{"add", "Print a + b", func(w io.Writer, d *doc.Document, _ *matrixFlags) error {
		a, b, err := d.RequireAB()
		if err != nil {
			return err
		}
		return printDense(w)(a.Add(b))
	}},
	{"sub", "Print a - b", func(w io.Writer, d *doc.Document, _ *matrixFlags) error {
		a, b, err := d.RequireAB()
		if err != nil {
			return err
		}
		return printDense(w)(a.Subtract(b))
	}},
	{"mul", "Print a × b (concurrently with --workers > 1)", func(w io.Writer, d *doc.Document, f *matrixFlags) error {
		a, b, err := d.RequireAB()
		if err != nil {
			return err
		}
		if f.workers > 1 {
			return printDense(w)(a.MultiplyParallel(b, f.workers))
		}
		return printDense(w)(a.Multiply(b))
	}},
	{"transpose", "Print the transpose of a", func(w io.Writer, d *doc.Document, _ *matrixFlags) error {
		a, err := d.RequireA()
		if err != nil {
			return err
		}
		return printDense(w)(a.Transpose(), nil)
	}},
	{"scale", "Print scalar · a", func(w io.Writer, d *doc.Document, _ *matrixFlags) error {
		a, err := d.RequireA()
		if err != nil {
			return err
		}
		s, err := d.RequireScalar()
		if err != nil {
			return err
		}
		return printDense(w)(a.MultiplyByScalar(s))
	}},
	{"neg", "Print -a", func(w io.Writer, d *doc.Document, _ *matrixFlags) error {
		a, err := d.RequireA()
		if err != nil {
			return err
		}
		return printDense(w)(a.ChangeSign(), nil)
	}},
	{"equal", "Print whether a equals b (within --epsilon unless --exact)", func(w io.Writer, d *doc.Document, f *matrixFlags) error {
		a, b, err := d.RequireAB()
		if err != nil {
			return err
		}
		eq := a.IsEqual(b)
		if f.exact {
			eq = a.IsEqualExactly(b)
		}
		_, err = fmt.Fprintln(w, eq)
		return err
	}},
}

// printDense returns a sink for (*Dense, error) results.
func printDense(w io.Writer) func(*matrix.Dense, error) error {
	return func(m *matrix.Dense, err error) error {
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, m)
		return err
	}
}

func newMatrixCmd(g *globalFlags) *cobra.Command {
	f := &matrixFlags{}

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Dense matrix operations on a YAML document {a, b, scalar}",
	}
	cmd.PersistentFlags().IntVar(&f.workers, "workers", 1, "Goroutines used by mul")
	cmd.PersistentFlags().BoolVar(&f.exact, "exact", false, "Compare cells with == in equal")

	for _, op := range matrixOps {
		cmd.AddCommand(&cobra.Command{
			Use:   op.name + " FILE",
			Short: op.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				opts, err := g.matrixOptions()
				if err != nil {
					return err
				}
				d, err := doc.LoadFile(args[0], opts...)
				if err != nil {
					return err
				}
				g.log.Debug("loaded document", "file", args[0], "op", op.name, "workers", f.workers)

				return op.run(cmd.OutOrStdout(), d, f)
			},
		})
	}

	return cmd
}
