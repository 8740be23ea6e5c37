package rulesets

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrUnknownRuleSet is returned by Lookup for names that are not registered.
var ErrUnknownRuleSet = errors.New("unknown rule set")

// None has no layers; its code is the raw word.
var None = Table{Name: "none", Description: "no rules"}

var builtin = map[string]Table{
	German.Name:         German,
	ExtendedGerman.Name: ExtendedGerman,
	None.Name:           None,
}

// Names returns the names of the built-in rule sets, sorted.
func Names() []string {
	names := lo.Keys(builtin)
	slices.Sort(names)
	return names
}

// Lookup returns the built-in rule set called name.
func Lookup(name string) (Table, error) {
	t, ok := builtin[name]
	if !ok {
		return Table{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownRuleSet, name, Names())
	}
	return t, nil
}

// All returns the built-in rule sets ordered by name.
func All() []Table {
	return lo.Map(Names(), func(name string, _ int) Table {
		return builtin[name]
	})
}
