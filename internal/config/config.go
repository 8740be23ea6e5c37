// Package config turns command line flags into an encoder pipeline. The web
// service and the command line tool share it.
package config

import (
	"fmt"
	"log/slog"

	"github.com/jusunglee/nameencoder/internal/encoder"
	"github.com/jusunglee/nameencoder/internal/rulesets"
	"github.com/jusunglee/nameencoder/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// DefaultRuleSet is used when no rule set is selected.
const DefaultRuleSet = "german"

// Encoding selects the rules and collaborators of a pipeline.
type Encoding struct {
	RuleSet   string
	RulesFile string
	Locale    string
	Romanize  bool
}

// Table returns the rule table: the rules file if set, else the named
// built-in rule set.
func (e Encoding) Table() (rulesets.Table, error) {
	if e.RulesFile != "" {
		return rulesets.LoadFile(e.RulesFile)
	}
	name := e.RuleSet
	if name == "" {
		name = DefaultRuleSet
	}
	return rulesets.Lookup(name)
}

// Options returns the encoder options for the locale and romanization settings.
func (e Encoding) Options(log *slog.Logger) ([]encoder.Option, error) {
	opts := []encoder.Option{encoder.WithLogger(log)}

	if e.Locale != "" {
		tag, err := language.Parse(e.Locale)
		if err != nil {
			return nil, fmt.Errorf("parsing locale %q: %w", e.Locale, err)
		}
		opts = append(opts, encoder.WithLocale(tag))
	}
	if e.Romanize {
		opts = append(opts, encoder.WithNormalizer(transliteration.Normalizer(nil)))
	}
	return opts, nil
}

// Pipeline resolves the rule table and builds its pipeline.
func (e Encoding) Pipeline(log *slog.Logger) (rulesets.Table, *encoder.Pipeline, error) {
	table, err := e.Table()
	if err != nil {
		return rulesets.Table{}, nil, err
	}
	opts, err := e.Options(log)
	if err != nil {
		return rulesets.Table{}, nil, err
	}
	p, err := table.Pipeline(opts...)
	if err != nil {
		return rulesets.Table{}, nil, err
	}
	return table, p, nil
}

// Flags holds the encoding flags registered on a flag set.
type Flags struct {
	ruleSet   *string
	rulesFile *string
	locale    *string
	romanize  *bool
}

// AddFlags registers --ruleset, --rules-file, --locale and --romanize on fs.
func AddFlags(fs *ff.FlagSet) *Flags {
	names := append([]string{DefaultRuleSet}, lo.Without(rulesets.Names(), DefaultRuleSet)...)
	return &Flags{
		ruleSet:   fs.StringEnumLong("ruleset", "built-in rule set", names...),
		rulesFile: fs.StringLong("rules-file", "", "TOML rule file, overrides --ruleset"),
		locale:    fs.StringLong("locale", "de", "BCP 47 locale for case folding"),
		romanize:  fs.BoolLong("romanize", "romanize Korean and Chinese names before encoding"),
	}
}

// Encoding returns the parsed flag values.
func (f *Flags) Encoding() Encoding {
	return Encoding{
		RuleSet:   *f.ruleSet,
		RulesFile: *f.rulesFile,
		Locale:    *f.locale,
		Romanize:  *f.romanize,
	}
}
