// SPDX-License-Identifier: MIT

package rational

import (
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for the text and YAML codecs.
var (
	_ fmt.Stringer             = Rational{}
	_ encoding.TextMarshaler   = Rational{}
	_ encoding.TextUnmarshaler = (*Rational)(nil)
	_ yaml.Marshaler           = Rational{}
	_ yaml.Unmarshaler         = (*Rational)(nil)
)

// MarshalText encodes r with String.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes the package grammar into r.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// MarshalYAML emits r as a plain scalar such as "-3 1/3".
func (r Rational) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML accepts scalar nodes in the package grammar. Bare YAML
// integers ("5") parse as whole numbers.
func (r *Rational) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("rational: line %d: expected scalar, got %s: %w",
			node.Line, kindName(node.Kind), ErrSyntax)
	}

	return r.UnmarshalText([]byte(node.Value))
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
