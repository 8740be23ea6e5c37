package encoder

import "errors"

var (
	// ErrNotEncoded is returned when a code or code path is read before any word was encoded.
	ErrNotEncoded = errors.New("code is available after encoding")

	// ErrNoOpenLayer is returned when a rule is added before a rule layer was opened.
	ErrNoOpenLayer = errors.New("rules can be added after adding a rule layer")

	// ErrInvalidPattern is returned when a pattern rule's expression does not compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrInvalidReplacement is returned when a pattern rule's destination references
	// a group the pattern does not have or is otherwise malformed.
	ErrInvalidReplacement = errors.New("invalid rule replacement")

	// ErrUnknownRuleKind signals a rule value that was not built by a constructor.
	ErrUnknownRuleKind = errors.New("implementation error: the rule type is not existing")
)
