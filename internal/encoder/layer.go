package encoder

import (
	"iter"
	"slices"
)

// Layer is an ordered batch of rules applied in one pass. Rules can only be
// appended. A Layer is not safe for concurrent Append and iteration; build it
// completely before a pipeline uses it.
type Layer struct {
	rules []Rule
}

func (l *Layer) Append(rule Rule) {
	l.rules = append(l.rules, rule)
}

// All iterates the rules in insertion order.
func (l *Layer) All() iter.Seq2[int, Rule] {
	return func(yield func(int, Rule) bool) {
		for i, r := range l.rules {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (l *Layer) Len() int { return len(l.rules) }

// Rules returns a copy of the layer's rules.
func (l *Layer) Rules() []Rule { return slices.Clone(l.rules) }

// apply runs every rule in order, each rule's output feeding the next.
func (l *Layer) apply(code string) string {
	for _, r := range l.rules {
		code = r.Apply(code)
	}
	return code
}

func (l *Layer) clone() *Layer {
	return &Layer{rules: slices.Clone(l.rules)}
}
