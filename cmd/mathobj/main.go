// SPDX-License-Identifier: MIT

// Command mathobj is a calculator for exact rationals and dense matrices.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
