// SPDX-License-Identifier: MIT

// Package matrix - YAML encoding of Dense as a sequence of rows.

package matrix

import (
	"gopkg.in/yaml.v3"
)

const ctxUnmarshalYAML = "Dense.UnmarshalYAML"

var (
	_ yaml.Marshaler   = (*Dense)(nil)
	_ yaml.Unmarshaler = (*Dense)(nil)
)

// MarshalYAML encodes the matrix as [[row0...], [row1...], ...].
func (m *Dense) MarshalYAML() (interface{}, error) {
	return m.ToSlice(), nil
}

// UnmarshalYAML decodes a sequence of equally long numeric rows. A receiver
// that already holds a matrix keeps its configuration; a zero Dense gets the
// defaults.
// Errors: decoding errors from yaml.v3, or the NewFromRows sentinels.
func (m *Dense) UnmarshalYAML(node *yaml.Node) error {
	var rows [][]float64
	if err := node.Decode(&rows); err != nil {
		return matrixErrorf(ctxUnmarshalYAML, err)
	}

	o := m.opts
	if m.g == nil {
		o = gatherOptions()
	}
	g, err := NewGrid(rows, o.cellValidator())
	if err != nil {
		return matrixErrorf(ctxUnmarshalYAML, err)
	}
	m.g, m.opts = g, o

	return nil
}
