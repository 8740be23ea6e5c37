package rulesets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidRuleFile is returned when a rule file cannot be decoded or is inconsistent.
var ErrInvalidRuleFile = errors.New("invalid rule file")

// Load decodes a rule table from TOML:
//
//	name = "german"
//
//	[[layer]]
//	kind = "literal"
//	rules = [["ä", "e"], ["ö", "o"]]
//
//	[[layer]]
//	kind = "pattern"
//	rules = [["([^s])ch", "$1k"]]
//
// Unknown keys are rejected. Rules with fewer than two elements are skipped
// when the table is registered.
func Load(r io.Reader) (Table, error) {
	var t Table
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Table{}, fmt.Errorf("%w: line %d, column %d: %w", ErrInvalidRuleFile, row, col, err)
		}
		return Table{}, fmt.Errorf("%w: %w", ErrInvalidRuleFile, err)
	}

	if err := validate(t); err != nil {
		return Table{}, err
	}
	return t, nil
}

// LoadFile reads a rule table from path. A table without a name is named
// after the file.
func LoadFile(path string) (Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading rule file: %w", err)
	}

	t, err := Load(bytes.NewReader(content))
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// Write encodes t as TOML.
func Write(w io.Writer, t Table) error {
	enc := toml.NewEncoder(w)
	enc.SetArraysMultiline(true)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding rule set %q: %w", t.Name, err)
	}
	return nil
}

// WriteFile writes t to path, replacing an existing file.
func WriteFile(path string, t Table) error {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing rule file: %w", err)
	}
	return nil
}

func validate(t Table) error {
	for i, layer := range t.Layers {
		switch layer.Kind {
		case KindLiteral, KindPattern:
		default:
			return fmt.Errorf("%w: layer %d: kind must be %q or %q, got %q",
				ErrInvalidRuleFile, i+1, KindLiteral, KindPattern, layer.Kind)
		}
		for j, rule := range layer.Rules {
			if len(rule) > 2 {
				return fmt.Errorf("%w: layer %d, rule %d: expected a pair, got %d elements",
					ErrInvalidRuleFile, i+1, j+1, len(rule))
			}
		}
	}
	return nil
}
