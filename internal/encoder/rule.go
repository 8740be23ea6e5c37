package encoder

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RuleKind tells the two rule variants apart. The zero value is not a valid kind.
type RuleKind int

const (
	KindLiteral RuleKind = iota + 1
	KindPattern
)

func (k RuleKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPattern:
		return "pattern"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Rule is a single rewrite step. It is either a literal substring replacement
// or a pattern replacement with back-references. Rules are immutable and may be
// shared between goroutines.
type Rule struct {
	kind        RuleKind
	source      string
	destination string

	re       *regexp.Regexp
	template string
}

// NewLiteralRule returns a rule replacing every non-overlapping occurrence of
// source with destination, scanning left to right. An empty source never matches.
func NewLiteralRule(source, destination string) Rule {
	return Rule{kind: KindLiteral, source: source, destination: destination}
}

// NewPatternRule compiles pattern once and returns a rule replacing every
// non-overlapping match with destination.
//
// The destination may reference capture groups as $n, ${n} or ${name}. For $n
// the longest digit prefix naming an existing group is used, so with a single
// group "$12" is group 1 followed by "2". A backslash escapes the next
// character; a literal dollar sign is written as \$.
func NewPatternRule(pattern, destination string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}

	template, err := expandTemplate(destination, re)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q for pattern %q: %w", ErrInvalidReplacement, destination, pattern, err)
	}

	return Rule{
		kind:        KindPattern,
		source:      pattern,
		destination: destination,
		re:          re,
		template:    template,
	}, nil
}

// MustPatternRule is like NewPatternRule but panics on error. It is meant for
// rule tables compiled into the program.
func MustPatternRule(pattern, destination string) Rule {
	r, err := NewPatternRule(pattern, destination)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rule) Kind() RuleKind { return r.kind }

// Source returns the substring a literal rule replaces, or "" for pattern rules.
func (r Rule) Source() string {
	if r.kind != KindLiteral {
		return ""
	}
	return r.source
}

// Pattern returns the expression of a pattern rule, or "" for literal rules.
func (r Rule) Pattern() string {
	if r.kind != KindPattern {
		return ""
	}
	return r.source
}

func (r Rule) Destination() string { return r.destination }

func (r Rule) String() string {
	return fmt.Sprintf("%s %q -> %q", r.kind, r.source, r.destination)
}

// Apply rewrites code. An empty code is returned as is regardless of the rule.
// Applying a Rule that was not built by a constructor panics with an error
// wrapping ErrUnknownRuleKind.
func (r Rule) Apply(code string) string {
	if code == "" {
		return code
	}

	switch r.kind {
	case KindLiteral:
		if r.source == "" {
			return code
		}
		return strings.ReplaceAll(code, r.source, r.destination)
	case KindPattern:
		return r.re.ReplaceAllString(code, r.template)
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownRuleKind, r.kind))
	}
}

// expandTemplate rewrites a destination into the template syntax of
// regexp.Regexp.Expand, resolving every group reference against re.
func expandTemplate(destination string, re *regexp.Regexp) (string, error) {
	groups := re.NumSubexp()

	var b strings.Builder
	for i := 0; i < len(destination); i++ {
		c := destination[i]
		switch c {
		case '\\':
			i++
			if i >= len(destination) {
				return "", errors.New("character to be escaped is missing")
			}
			if destination[i] == '$' {
				b.WriteString("$$")
			} else {
				b.WriteByte(destination[i])
			}

		case '$':
			i++
			if i >= len(destination) {
				return "", errors.New("illegal group reference: group index is missing")
			}

			if destination[i] == '{' {
				end := strings.IndexByte(destination[i:], '}')
				if end < 0 {
					return "", errors.New("named capturing group is missing trailing '}'")
				}
				name := destination[i+1 : i+end]
				if err := checkGroupName(name, re); err != nil {
					return "", err
				}
				b.WriteString("${" + name + "}")
				i += end
				continue
			}

			if !isDigit(destination[i]) {
				return "", fmt.Errorf("illegal group reference at %q", destination[i-1:])
			}
			ref := int(destination[i] - '0')
			if ref > groups {
				return "", fmt.Errorf("no group %d", ref)
			}
			for i+1 < len(destination) && isDigit(destination[i+1]) {
				next := ref*10 + int(destination[i+1]-'0')
				if next > groups {
					break
				}
				ref = next
				i++
			}
			b.WriteString("${" + strconv.Itoa(ref) + "}")

		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

func checkGroupName(name string, re *regexp.Regexp) error {
	if name == "" {
		return errors.New("named capturing group has 0 length name")
	}
	if strings.IndexFunc(name, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		n, err := strconv.Atoi(name)
		if err != nil || n > re.NumSubexp() {
			return fmt.Errorf("no group %s", name)
		}
		return nil
	}
	if re.SubexpIndex(name) < 0 {
		return fmt.Errorf("no group with name {%s}", name)
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
