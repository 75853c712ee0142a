// SPDX-License-Identifier: MIT

package matrix

// OptionsSnapshot is a read-only view of the resolved Options for black-box tests.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
	Workers        int
}

// GatherOptionsSnapshot resolves opts the way constructors do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf, Workers: o.workers}
}
