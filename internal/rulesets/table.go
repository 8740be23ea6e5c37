// Package rulesets supplies rule tables for the encoder: the built-in German
// tables and tables read from TOML files.
package rulesets

import (
	"fmt"

	"github.com/jusunglee/nameencoder/internal/encoder"
)

const (
	KindLiteral = "literal"
	KindPattern = "pattern"
)

// Table is an ordered list of rule layers. Each rule is a pair of source (or
// pattern) and destination.
type Table struct {
	Name        string      `toml:"name"`
	Description string      `toml:"description,omitempty"`
	Layers      []LayerSpec `toml:"layer"`
}

// LayerSpec is one layer of a Table. Kind is "literal" or "pattern".
type LayerSpec struct {
	Kind  string     `toml:"kind"`
	Rules [][]string `toml:"rules"`
}

func literal(rules ...[]string) LayerSpec {
	return LayerSpec{Kind: KindLiteral, Rules: rules}
}

func pattern(rules ...[]string) LayerSpec {
	return LayerSpec{Kind: KindPattern, Rules: rules}
}

// Register adds the layers of t to b in order.
func (t Table) Register(b *encoder.Builder) error {
	for i, layer := range t.Layers {
		var err error
		switch layer.Kind {
		case KindLiteral:
			err = b.AddLiteralLayer(layer.Rules)
		case KindPattern:
			err = b.AddPatternLayer(layer.Rules)
		default:
			err = fmt.Errorf("%w: unknown layer kind %q", ErrInvalidRuleFile, layer.Kind)
		}
		if err != nil {
			return fmt.Errorf("rule set %q, layer %d: %w", t.Name, i+1, err)
		}
	}
	return nil
}

// Pipeline builds an encoder pipeline from t.
func (t Table) Pipeline(opts ...encoder.Option) (*encoder.Pipeline, error) {
	b := encoder.NewBuilder(opts...)
	if err := t.Register(b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Extend returns a copy of t with more layers appended.
func (t Table) Extend(name, description string, layers ...LayerSpec) Table {
	all := make([]LayerSpec, 0, len(t.Layers)+len(layers))
	all = append(all, t.Layers...)
	all = append(all, layers...)
	return Table{Name: name, Description: description, Layers: all}
}
