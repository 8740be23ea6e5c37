package encoder

import (
	"fmt"

	"github.com/samber/lo"
)

// Builder assembles rule layers. A layer has to be opened with BeginLayer
// before rules can be added to it; rules always go to the most recently
// opened layer. Build snapshots the layers into an immutable Pipeline.
type Builder struct {
	layers []*Layer
	opts   []Option
}

func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// BeginLayer opens a new, empty layer after all existing ones.
func (b *Builder) BeginLayer() *Builder {
	b.layers = append(b.layers, &Layer{})
	return b
}

func (b *Builder) LayerCount() int { return len(b.layers) }

func (b *Builder) current() (*Layer, error) {
	if len(b.layers) == 0 {
		return nil, ErrNoOpenLayer
	}
	return b.layers[len(b.layers)-1], nil
}

// AddRule appends an already constructed rule to the open layer.
func (b *Builder) AddRule(rule Rule) error {
	layer, err := b.current()
	if err != nil {
		return err
	}
	layer.Append(rule)
	return nil
}

func (b *Builder) AddLiteralRule(source, destination string) error {
	return b.AddRule(NewLiteralRule(source, destination))
}

func (b *Builder) AddPatternRule(pattern, destination string) error {
	if _, err := b.current(); err != nil {
		return err
	}
	rule, err := NewPatternRule(pattern, destination)
	if err != nil {
		return err
	}
	return b.AddRule(rule)
}

// AddLiteralLayer opens a layer holding one literal rule per pair. Pairs with
// a missing source or destination are skipped.
func (b *Builder) AddLiteralLayer(pairs [][]string) error {
	return b.addLayer(pairs, b.AddLiteralRule)
}

// AddPatternLayer opens a layer holding one pattern rule per pair. Pairs with
// a missing pattern or destination are skipped. If a pattern does not
// compile, no layer is added.
func (b *Builder) AddPatternLayer(pairs [][]string) error {
	rules := make([]Rule, 0, len(pairs))
	for i, p := range completePairs(pairs) {
		rule, err := NewPatternRule(p[0], p[1])
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}

	b.BeginLayer()
	for _, r := range rules {
		if err := b.AddRule(r); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) addLayer(pairs [][]string, add func(string, string) error) error {
	b.BeginLayer()
	for _, p := range completePairs(pairs) {
		if err := add(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

func completePairs(pairs [][]string) [][]string {
	return lo.Filter(pairs, func(p []string, _ int) bool {
		return len(p) >= 2
	})
}

// Build returns a pipeline over a snapshot of the current layers. Later
// changes to the builder do not affect pipelines built before.
func (b *Builder) Build() *Pipeline {
	o := defaultOptions()
	for _, opt := range b.opts {
		opt(&o)
	}

	layers := lo.Map(b.layers, func(l *Layer, _ int) *Layer {
		return l.clone()
	})

	return &Pipeline{layers: layers, opts: o}
}
