// SPDX-License-Identifier: MIT

// Package doc loads matrix operand documents for the mathobj command.
//
// A document is YAML with up to two matrices and a scalar:
//
//	a: [[1, 2], [3, 4]]
//	b: [[0, 1], [1, 0]]
//	scalar: 2.5
//
// Matrices are decoded into *matrix.Dense values configured with the
// caller's options, so tolerance and NaN/Inf policy apply from the start.
package doc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mathobjects/matrix"
	"gopkg.in/yaml.v3"
)

// ErrMissing reports that an operation needs a field the document lacks.
var ErrMissing = errors.New("doc: missing field")

// Document is a decoded operand set. Nil matrices were absent.
type Document struct {
	A, B   *matrix.Dense
	Scalar *float64
}

type rawDocument struct {
	A      *yaml.Node `yaml:"a"`
	B      *yaml.Node `yaml:"b"`
	Scalar *float64   `yaml:"scalar"`
}

// Load decodes a single document from r. Unknown keys are rejected.
func Load(r io.Reader, opts ...matrix.Option) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("doc: decode: %w", err)
	}

	a, err := decodeMatrix("a", raw.A, opts)
	if err != nil {
		return nil, err
	}
	b, err := decodeMatrix("b", raw.B, opts)
	if err != nil {
		return nil, err
	}

	return &Document{A: a, B: b, Scalar: raw.Scalar}, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...matrix.Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("doc: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// decodeMatrix decodes node into a matrix pre-configured with opts; the
// placeholder's configuration survives Dense.UnmarshalYAML.
func decodeMatrix(key string, node *yaml.Node, opts []matrix.Option) (*matrix.Dense, error) {
	if node == nil {
		return nil, nil
	}
	m, err := matrix.NewDense(1, 1, opts...)
	if err != nil {
		return nil, err
	}
	if err = node.Decode(m); err != nil {
		return nil, fmt.Errorf("doc: field %q: %w", key, err)
	}

	return m, nil
}

// RequireA returns A or ErrMissing.
func (d *Document) RequireA() (*matrix.Dense, error) {
	if d.A == nil {
		return nil, fmt.Errorf("%w: a", ErrMissing)
	}

	return d.A, nil
}

// RequireAB returns both matrices or ErrMissing.
func (d *Document) RequireAB() (*matrix.Dense, *matrix.Dense, error) {
	a, err := d.RequireA()
	if err != nil {
		return nil, nil, err
	}
	if d.B == nil {
		return nil, nil, fmt.Errorf("%w: b", ErrMissing)
	}

	return a, d.B, nil
}

// RequireScalar returns the scalar or ErrMissing.
func (d *Document) RequireScalar() (float64, error) {
	if d.Scalar == nil {
		return 0, fmt.Errorf("%w: scalar", ErrMissing)
	}

	return *d.Scalar, nil
}
